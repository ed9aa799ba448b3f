// Package cmd provides command implementations for the rndr CLI.
package cmd

// Exit codes returned by the rndr CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates schema or input validation failed.
	ExitValidationError = 2

	// ExitNotFound indicates a file, alias, type, or member was not found.
	ExitNotFound = 5

	// ExitUnresolved indicates an alias or type has no view-model
	// registration under the strict policy.
	ExitUnresolved = 7
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitUnresolved:
		return "Unresolved View Model"
	default:
		return "Unknown"
	}
}
