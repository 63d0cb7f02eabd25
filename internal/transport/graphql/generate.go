// Package graphql provides the GraphQL transport layer for the glossary
// backend. It defines the GraphQL schema, resolvers, and error handling for
// the collaborative draft and publication workflow. Scalar types (UUID,
// DateTime) and GraphQL types are automatically generated via gqlgen from
// the schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
