package aiquiz

import (
	"context"

	"github.com/saulo-duarte/questoes-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

// Diagnostics receives the failure details that are logged server-side and
// kept out of the response body.
type Diagnostics interface {
	Record(ctx context.Context, msg string, err error, fields logrus.Fields)
}

type generationIDKey struct{}

func withGenerationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, generationIDKey{}, id)
}

func generationID(ctx context.Context) string {
	id, _ := ctx.Value(generationIDKey{}).(string)
	return id
}

type logDiagnostics struct{}

func NewLogDiagnostics() Diagnostics {
	return logDiagnostics{}
}

func (logDiagnostics) Record(ctx context.Context, msg string, err error, fields logrus.Fields) {
	log := config.WithContext(ctx).WithFields(fields)
	if id := generationID(ctx); id != "" {
		log = log.WithField("generation_id", id)
	}
	if err != nil {
		log = log.WithError(err)
	}
	log.Error(msg)
}
