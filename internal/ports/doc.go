// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [Node], [TextNode], [Container]: Read/write access to host document nodes
//   - [Document]: The current selection and the text nodes in scope
//   - [FontLoader]: Makes a font face usable before it is applied
//   - [Notifier]: Short user-visible messages and the terminal run message
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement these interfaces
// with concrete implementations (document files, font directories, zerolog, etc.).
package ports
