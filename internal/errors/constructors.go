package errors

// Named constructors for the error taxonomy the pipeline surfaces to callers.
// Each one is fatal to the triggering operation, not to the whole batch.

// DataFormatError reports a dataset that is missing required columns or has
// unparsable rows. The triggering load or sort aborts before any write.
func DataFormatError(message string) *PipelineError {
	return New(CategoryData, SeverityError, message)
}

// WrapDataFormat wraps a lower-level parse error as a DataFormatError.
func WrapDataFormat(err error, message string) *PipelineError {
	return Wrap(err, CategoryData, SeverityError, message)
}

// TaxonomyGapError reports an active resource whose category is absent from
// the taxonomy and not on the exempt list.
func TaxonomyGapError(message string) *PipelineError {
	return New(CategoryTaxonomy, SeverityError, message)
}

// TemplateMissingError reports a required template fragment that is absent.
func TemplateMissingError(message string) *PipelineError {
	return New(CategoryTemplate, SeverityError, message)
}

// UnresolvedTokenError reports placeholder tokens left after rendering.
func UnresolvedTokenError(message string) *PipelineError {
	return New(CategoryToken, SeverityError, message)
}

// FileWriteError reports an unwritable output root. It is fatal to the single
// generation call and must not affect other generator calls.
func FileWriteError(err error, message string) *PipelineError {
	return Wrap(err, CategoryWrite, SeverityError, message)
}

// ConfigError reports invalid pipeline configuration.
func ConfigError(message string) *PipelineError {
	return New(CategoryConfig, SeverityError, message)
}
