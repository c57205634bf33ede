// Package ports defines the interfaces between the state engine and the
// outside world. Repository ports are implemented by the repository adapter
// and consumed by the effect handlers. Client and storage ports are
// implemented by outbound adapters. The engine port is consumed by the
// inbound host shell.
package ports
