package service

import (
	"github.com/go-resty/resty/v2"
	"github.com/voyage-finance/ai-graphql-server/config"
)

type Service struct {
	Client   *resty.Client
	Settings *config.Settings
}

func New(settings *config.Settings) *Service {
	client := resty.New().
		SetTimeout(settings.RequestTimeout)
	return &Service{Client: client, Settings: settings}
}
