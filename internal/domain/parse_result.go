package domain

type ParseResult struct {
	File  *File
	Table *Table // filled in case of a success
	Error error  // filled in case of an error
}
