// Package engine implements the calculator core: a TI-84 flavored expression
// evaluator plus the memory register and calculation history that back the
// various front ends.
//
// Evaluation is pure; all mutable state (memory, history, Ans) lives in Engine.
package engine
