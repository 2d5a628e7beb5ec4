/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package requestbuilder assembles review prompts and defines the JSON
// contract the model's response is expected to follow.
package requestbuilder

import (
	"chainguard.dev/loupe/promptbuilder"
	"chainguard.dev/loupe/schema"
)

// SystemPrompt frames every review request sent to a model backend.
const SystemPrompt = "You are a senior software developer providing detailed code reviews."

// Suggestion carries the proposed fix for a single issue.
type Suggestion struct {
	Text string `json:"text" jsonschema:"description=Detailed explanation of the fix,required"`
	Code string `json:"code" jsonschema:"description=Example code showing the fix"`
}

// Issue is one entry of the issues array in the model's response.
type Issue struct {
	Type       string     `json:"type" jsonschema:"description=One of CRITICAL ISSUE / IMPROVEMENT NEEDED / BEST PRACTICE / SECURITY CONCERN / PERFORMANCE IMPACT,required"`
	Line       int        `json:"line" jsonschema:"description=The exact line number of the issue,required"`
	Message    string     `json:"message" jsonschema:"description=Clear issue description,required"`
	Code       string     `json:"code" jsonschema:"description=The problematic code snippet"`
	Suggestion Suggestion `json:"suggestion" jsonschema:"description=The proposed fix,required"`
	Impact     string     `json:"impact_level" jsonschema:"description=Impact level: high / medium / low,required"`
	Effort     string     `json:"effort_estimate" jsonschema:"description=Effort estimate: small / medium / large,required"`
}

// Review is the consolidated JSON object the model is asked to return.
type Review struct {
	Issues []Issue `json:"issues" jsonschema:"description=Every issue found in the reviewed code,required"`
}

const promptTemplate = `Please analyze the following {{language}} code as a senior software developer and provide a thorough review.
Focus on these categories:
1. CRITICAL ISSUE: Severe bugs, incorrect logic, or major security vulnerabilities
2. IMPROVEMENT NEEDED: Code quality issues that should be addressed
3. BEST PRACTICE: Suggestions for better coding practices and maintainability
4. SECURITY CONCERN: Potential security risks and vulnerabilities
5. PERFORMANCE IMPACT: Performance optimization opportunities
Code to review:
{{code}}

For each issue found, provide:
- The exact line number
- Clear issue description
- The problematic code snippet
- Detailed explanation of the fix
- Example code showing the fix
- Impact level (high/medium/low)
- Effort estimate (small/medium/large)
Format your response as a single consolidated JSON object matching this schema:
{{schema}}`

// reviewPrompt has the response schema pre-bound; language and code are
// bound per request.
var reviewPrompt = promptbuilder.Must(
	promptbuilder.Must(promptbuilder.New(promptTemplate)).
		BindJSON("schema", schema.ReflectType[Review]()))

// Prompt renders the user prompt for one chunk of code.
func Prompt(language, code string) (string, error) {
	p, err := reviewPrompt.Bind("language", language)
	if err != nil {
		return "", err
	}
	p, err = p.Bind("code", code)
	if err != nil {
		return "", err
	}
	return p.Build()
}
