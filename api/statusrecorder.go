package api

import "net/http"

// statusRecorder remembers what a handler sent so the access log can report
// it after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	written     int
}

func recordStatus(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// Status is the code sent to the client, 200 when the handler never set one.
func (sr *statusRecorder) Status() int {
	if !sr.wroteHeader {
		return http.StatusOK
	}
	return sr.status
}

func (sr *statusRecorder) WriteHeader(status int) {
	// net/http ignores superfluous calls, and so do we.
	if sr.wroteHeader {
		return
	}
	sr.status = status
	sr.wroteHeader = true
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(data []byte) (int, error) {
	if !sr.wroteHeader {
		sr.WriteHeader(http.StatusOK)
	}
	n, err := sr.ResponseWriter.Write(data)
	sr.written += n
	return n, err
}

func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
