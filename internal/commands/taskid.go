package commands

import "strconv"

// parseTaskID parses the single positional task id of remove and done.
func parseTaskID(args []string) (uint64, error) {
	switch {
	case len(args) == 0:
		return 0, usagef("task id required")
	case len(args) > 1:
		return 0, usagef("unexpected argument: %s", args[1])
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, usagef("invalid task id: %s", args[0])
	}
	return id, nil
}
