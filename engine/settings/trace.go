package settings

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontbin.engine'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.engine")
}
