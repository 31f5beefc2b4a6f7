package dto

//go:generate oapi-codegen -generate types -package dto -o dto.go ../../../api/openapi.yaml
