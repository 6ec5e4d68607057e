package dialect

import "fmt"

// Kind is a foreign language a yapl file may resemble.
type Kind uint8

const (
	Unknown Kind = iota
	Python
	Go
	Rust
	TypeScript

	kindCount
)

func (k Kind) String() string {
	switch k {
	case Python:
		return "python"
	case Go:
		return "go"
	case Rust:
		return "rust"
	case TypeScript:
		return "typescript"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}
