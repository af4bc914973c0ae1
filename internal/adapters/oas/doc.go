// Package oas holds the JSON wire types of the clubs REST API, shared by the
// reference server (httpapi) and the remote data sources.
package oas
