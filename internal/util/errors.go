package util

import "errors"

var (
	ErrLearnerNotFound  = errors.New("learner profile not found")
	ErrPathNotFound     = errors.New("learning path not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrPretestNotFound  = errors.New("pretest not found")
)
