package aiquiz_test

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type diagnostic struct {
	msg    string
	err    error
	fields logrus.Fields
}

type fakeDiagnostics struct {
	mu      sync.Mutex
	records []diagnostic
}

func (f *fakeDiagnostics) Record(_ context.Context, msg string, err error, fields logrus.Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, diagnostic{msg: msg, err: err, fields: fields})
}

func (f *fakeDiagnostics) all() []diagnostic {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]diagnostic(nil), f.records...)
}

type fakeProvider struct {
	calls   int
	prompts []string
	text    string
	err     error
}

func (p *fakeProvider) SendPrompt(_ context.Context, prompt string) (string, error) {
	p.calls++
	p.prompts = append(p.prompts, prompt)
	return p.text, p.err
}
