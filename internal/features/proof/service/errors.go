package service

import (
	apperrors "subhub-backend/internal/common/errors"
)

func errNoPendingUpload() *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidTransition, "no pending upload to confirm")
}

func errNoFileStaged() *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidTransition, "no file staged for upload")
}

func errTransition(action string, from interface{}) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeInvalidTransition, "%s is not allowed in state %v", action, from)
}

func errConstraint(reason string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeConstraintViolation, reason)
}

func errStorage(message string, cause error) *apperrors.AppError {
	return apperrors.Wrap(apperrors.ErrCodeStorageFailure, message, cause)
}

func errAcknowledge(cause error) *apperrors.AppError {
	return apperrors.Wrap(apperrors.ErrCodeAuthorityUnreachable, "invoice record did not acknowledge the proof", cause)
}
