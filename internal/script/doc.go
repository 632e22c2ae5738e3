// Package script embeds a sandboxed Lua runtime for user-defined
// commands. Scripts register named actions through the vicmd API;
// registered actions dispatch like built-in commands, including count
// prefixes, key bindings, and repeat.
package script
