package path

const (
	whitespaceRegexp = `\s+`
	notAlnumRegexp   = "[^A-Za-z0-9]+"

	extXLSX = ".xlsx"
)
