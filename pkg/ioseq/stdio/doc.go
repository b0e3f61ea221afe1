// Package stdio wraps the process standard streams as a single handle for
// ioseq chains. Default() bundles os.Stdin, os.Stdout and os.Stderr; New()
// accepts arbitrary streams, which keeps chains testable against in-memory
// buffers.
//
// Key operations:
// - PrintLine: write a line to the output stream
// - ReadLine: read a line from the input stream
// - WriteToErr/WriteAllToErr/WriteFmtToErr: write to the error stream
//
// The handle also satisfies io.Reader (input stream) and io.Writer (output
// stream), so the generic ioseq operations apply to it as well. Each call
// locks only the one stream it touches, for the duration of that call;
// nothing synchronizes other code using the same streams.
package stdio
