package xiangqi

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange    = errors.New("point out of range")
	ErrIllegalMove   = errors.New("illegal move")
	ErrOccupied      = errors.New("intersection occupied")
	ErrInvalidLayout = errors.New("invalid layout")
)

type OutOfRangeError struct {
	At Point
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("point %s out of range", e.At)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

type IllegalMoveError struct {
	Piece  *Piece
	To     Point
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %v to %s: %s", e.Piece, e.To, e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool { return target == ErrIllegalMove }

// InvariantViolation 棋盘映射与棋子位置不一致，属于内部 bug，只会被 panic 出来
type InvariantViolation struct {
	Detail string
}

func (e InvariantViolation) Error() string {
	return "xiangqi: invariant violation: " + e.Detail
}
