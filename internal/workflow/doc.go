// Package workflow owns the task approval state machine and the rules
// entangled with it: who may edit what in which status, the daily-hours cap,
// and the error taxonomy mutations report.
//
// The state machine is small: tasks are created pending, a manager's ruling
// moves them to approved or rejected, and an owner edit of a rejected task
// reopens it as pending. Approved is terminal. Every mutation runs inside a
// single store transaction so the cap check and the write it guards commit
// atomically.
package workflow
