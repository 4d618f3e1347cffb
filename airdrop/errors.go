package airdrop

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized         = errors.New("Unauthorized")
	ErrNotFound             = errors.New("NotFound")
	ErrAlreadyRegistered    = errors.New("AlreadyRegistered")
	ErrAlreadyClaiming      = errors.New("AlreadyClaiming")
	ErrInvalidSchedule      = errors.New("InvalidSchedule")
	ErrInsufficientFunding  = errors.New("InsufficientFunding")
	ErrPaused               = errors.New("Paused")
	ErrOverclaim            = errors.New("Overclaim")
	ErrAlreadyInitialized   = errors.New("AlreadyInitialized")
	ErrNotInitialized       = errors.New("NotInitialized")
	ErrNotOpen              = errors.New("NotOpen")
	ErrAlreadyOpen          = errors.New("AlreadyOpen")
	ErrCannotBeZero         = errors.New("CannotBeZero")
	ErrNoBeneficiaries      = errors.New("NoBeneficiaries")
	ErrArraysLengthMismatch = errors.New("ArraysLengthMismatch")
	ErrTokenAlreadySet      = errors.New("TokenAlreadySet")
	ErrTokenNotSet          = errors.New("TokenNotSet")
)

func ErrInvalidUserAddress(address string) error {
	return fmt.Errorf("InvalidUserAddress: %s", address)
}

func ErrInvalidContractAddress(address string) error {
	return fmt.Errorf("InvalidContractAddress: %s", address)
}

func InvalidAmountError(entity, value string) error {
	return fmt.Errorf("InvalidAmount for %s with value %s", entity, value)
}

type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(code int, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
