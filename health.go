// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package stash

import (
	"encoding/json"
	"net/http"
)

const (
	contentType = "application/health+json"
	svcStatus   = "pass"
	description = " service"
)

// Version of the running service.
var Version = "0.1.0"

// HealthInfo contains version endpoint response.
type HealthInfo struct {
	// Status contains service status.
	Status string `json:"status"`

	// Version contains service current version value.
	Version string `json:"version"`

	// Description contains service description.
	Description string `json:"description"`

	// InstanceID contains the ID of the running instance.
	InstanceID string `json:"instance_id"`
}

// Health exposes an HTTP handler for retrieving service health.
func Health(service, instanceID string) http.HandlerFunc {
	return func(rw http.ResponseWriter, _ *http.Request) {
		res := HealthInfo{
			Status:      svcStatus,
			Version:     Version,
			Description: service + description,
			InstanceID:  instanceID,
		}

		rw.Header().Set("Content-Type", contentType)
		if err := json.NewEncoder(rw).Encode(res); err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
		}
	}
}
