package filetype

// IsPythonDescription exports isPythonDescription for testing.
var IsPythonDescription = isPythonDescription //nolint:gochecknoglobals // test export

// LooksLikePython exports looksLikePython for testing.
var LooksLikePython = looksLikePython //nolint:gochecknoglobals // test export
