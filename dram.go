// Package dram implements a cycle-accurate DDR4 DRAM device and memory
// controller model.
//
// The simulator accepts a stream of read/write requests at an integer cycle
// clock, models the DRAM device's timing constraints and internal state
// (power-up, bank open/closed, refresh, power-down, self-refresh), selects
// and issues commands each cycle subject to those constraints, and reports
// when each request completes in simulated cycles.
//
// The package is organized as:
//
//   - level.go, state.go      the DDR4 address hierarchy and per-node state
//   - codec.go                address ↔ per-level coordinate mapping
//   - org.go, speed.go        per-configuration device parameters
//   - timing.go               the DDR4 command timing table
//   - precursor.go            precursor-command resolution and state update
//   - node.go                 the per-channel device tree
//   - request.go, queue.go    requests and the bounded FIFOs that hold them
//   - scheduler.go            pluggable request-picking strategies
//   - refresh.go              periodic maintenance collaborator
//   - controller.go           per-channel command issue and queue management
//   - memory.go               the façade callers interact with
//   - config.go               configuration value type and TOML I/O
package dram
