package resource

type Kind int

const (
	Global Kind = iota
	File
	Tab
	Log
)

func (k Kind) String() string {
	return [...]string{
		"global",
		"file",
		"tab",
		"log",
	}[k]
}
