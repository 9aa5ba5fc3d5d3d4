package questlogix

import (
	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	// INVALID_ARGUMENT_ERROR_CODE represents an error for invalid input arguments.
	INVALID_ARGUMENT_ERROR_CODE = 3
	// NOT_FOUND_ERROR_CODE represents an error for a resource not being found.
	NOT_FOUND_ERROR_CODE = 5
	// FAILED_PRECONDITION_ERROR_CODE represents an error for a failed precondition.
	FAILED_PRECONDITION_ERROR_CODE = 9
	// UNIMPLEMENTED_ERROR_CODE represents an error for an unimplemented feature.
	UNIMPLEMENTED_ERROR_CODE = 12
	// INTERNAL_ERROR_CODE represents an internal server error.
	INTERNAL_ERROR_CODE = 13
)

var (
	ErrInternal           = runtime.NewError("internal error occurred", INTERNAL_ERROR_CODE)
	ErrBadInput           = runtime.NewError("bad input", INVALID_ARGUMENT_ERROR_CODE)
	ErrNoSessionUser      = runtime.NewError("no user ID in session", INVALID_ARGUMENT_ERROR_CODE)
	ErrPayloadDecode      = runtime.NewError("cannot decode json", INTERNAL_ERROR_CODE)
	ErrPayloadEncode      = runtime.NewError("cannot encode json", INTERNAL_ERROR_CODE)
	ErrSystemNotAvailable = runtime.NewError("system not available", UNIMPLEMENTED_ERROR_CODE)
	ErrSystemNotFound     = runtime.NewError("system not found", INTERNAL_ERROR_CODE)

	// Objective state rejections. These are recoverable outcomes surfaced to the
	// caller, never faults.
	ErrObjectiveNotFound      = runtime.NewError("objective not found", NOT_FOUND_ERROR_CODE)
	ErrObjectiveNotComplete   = runtime.NewError("objective is not completed", FAILED_PRECONDITION_ERROR_CODE)
	ErrObjectiveClaimed       = runtime.NewError("objective reward already claimed", FAILED_PRECONDITION_ERROR_CODE)
	ErrUserAlreadyInitialized = runtime.NewError("user objectives already initialized", FAILED_PRECONDITION_ERROR_CODE)

	// Inventory state rejections.
	ErrItemNotFound     = runtime.NewError("item not found", NOT_FOUND_ERROR_CODE)
	ErrItemInsufficient = runtime.NewError("not enough of the item held", FAILED_PRECONDITION_ERROR_CODE)
)
