package main

import (
	"github.com/rios0rios0/gitkeeper/internal"
)

func injectAppContext() (*internal.AppInternal, error) {
	container, err := internal.NewContainer()
	if err != nil {
		return nil, err
	}

	var appInternal *internal.AppInternal
	err = container.Invoke(func(ai *internal.AppInternal) { appInternal = ai })
	return appInternal, err
}
