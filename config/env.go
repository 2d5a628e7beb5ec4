/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package config

// Azure holds the Azure OpenAI connection settings. Everything except the API
// version must be present in the environment.
type Azure struct {
	Endpoint   string `env:"AZURE_OPENAI_ENDPOINT,required"`
	APIKey     string `env:"AZURE_OPENAI_KEY,required"`
	Deployment string `env:"AZURE_OPENAI_DEPLOYMENT,required"`
	APIVersion string `env:"AZURE_OPENAI_API_VERSION,default=2024-02-15-preview"`
}

// Claude holds the Anthropic API settings.
type Claude struct {
	APIKey string `env:"ANTHROPIC_API_KEY,required"`
	Model  string `env:"ANTHROPIC_MODEL,default=claude-sonnet-4-5"`
}

// Gemini holds the Google GenAI settings.
type Gemini struct {
	APIKey string `env:"GEMINI_API_KEY,required"`
	Model  string `env:"GEMINI_MODEL,default=gemini-2.5-flash"`
}
