// Package config handles configuration loading for ceibas-hub.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	announcer:
//	  api_key: "${GEMINI_API_KEY}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//
// Database (empty path keeps all state in memory):
//
//	database:
//	  path: "/var/lib/ceibas/hub.db"
//
// Generative announcements:
//
//	announcer:
//	  api_key: "${GEMINI_API_KEY}"
//	  model: "gemini-2.5-flash"
//
// Visitor access QR service:
//
//	access:
//	  qr_base_url: "https://api.qrserver.com/v1/create-qr-code/"
//
// Community seed data (optional TOML override of built-in demo data):
//
//	community:
//	  seeds_path: "/etc/ceibas/seeds.toml"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
package config
