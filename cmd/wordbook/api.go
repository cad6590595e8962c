package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordbook/internal/config"
)

// API is the server API shape the CLI talks to.
type API string

func (a *API) Set(val string) error {
	for _, api := range allAPIs {
		if val == string(api) {
			*a = api
			return nil
		}
	}
	return fmt.Errorf("invalid API: %s", val)
}

func (a API) String() string {
	return string(a)
}

func (a *API) Type() string {
	return "API"
}

const (
	APIPartner API = config.APIPartner
	APILegacy  API = config.APILegacy
)

var (
	_       pflag.Value = (*API)(nil)
	allAPIs             = []API{APIPartner, APILegacy}
)
