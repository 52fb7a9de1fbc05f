package main

import (
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/questoes-lambda/internal/config"
	"github.com/saulo-duarte/questoes-lambda/internal/container"
	"github.com/saulo-duarte/questoes-lambda/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		AllowedOrigins: c.Settings.AllowedOrigins,
	})

	if c.Settings.RunningInLambda() {
		lambda.Start(chiadapter.New(r).ProxyWithContext)
		return
	}

	addr := ":" + c.Settings.Port
	config.Logger.Infof("Servidor local ouvindo em %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		config.Logger.WithError(err).Fatal("Servidor encerrado")
	}
}
