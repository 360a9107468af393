// Package openapi 是依據 openapi.yaml 產生的 gin strict server 介面與資料模型，
// 修改 openapi.yaml 後在 tools/oapi-codegen 執行 go generate 重新產生 openapi_gen.go
package openapi
