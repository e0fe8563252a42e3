package validation

// configSchemaJSON is the embedded JSON Schema for .stackpick.yaml. Keep it
// in sync with projectconfig.ProjectConfig.
const configSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "stackpick project configuration",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "defaults": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "optimize_for": {
          "type": "string",
          "enum": ["balanced", "latency", "quality", "cost"]
        },
        "max_results": {
          "type": "integer",
          "minimum": 1,
          "maximum": 10
        },
        "framework": {
          "type": "string",
          "enum": ["pipecat", "nextjs"]
        },
        "format": {
          "type": "string",
          "enum": ["text", "json"]
        }
      }
    },
    "scaffold": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "fallback_threshold": {
          "type": "number",
          "minimum": 0
        },
        "output_dir": {
          "type": "string",
          "minLength": 1
        }
      }
    }
  }
}
`
