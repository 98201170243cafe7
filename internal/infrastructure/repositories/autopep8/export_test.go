package autopep8

// BuildArgs exports buildArgs for testing.
var BuildArgs = buildArgs //nolint:gochecknoglobals // test export
