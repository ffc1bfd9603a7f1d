package ports

// ContentEditor hands page content to an interactive editor and returns what
// the user saved
type ContentEditor interface {
	Edit(content string) (string, error)
}
