package api

import "github.com/vango-go/vango"

// Version identifies the care_chat build reported by the health endpoint.
const Version = "0.2.0"

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func healthResponse() HealthResponse {
	return HealthResponse{
		Status:  "ok",
		Version: Version,
	}
}

func HealthGET(ctx vango.Ctx) (*vango.Response[HealthResponse], error) {
	return vango.OK(healthResponse()), nil
}
