//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// StorageBackend selects where chat records are persisted
// ENUM(file,bolt,sqlite,postgres)
type StorageBackend string

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string
