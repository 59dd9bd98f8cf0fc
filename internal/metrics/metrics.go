// Package metrics exposes application metrics collectors.
package metrics

import "github.com/goodnatureofminers/transactionchecker/internal/model"

const namespace = "transactionchecker"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
