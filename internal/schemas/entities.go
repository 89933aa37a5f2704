package schemas

import (
	"os"
	"sync"
)

// Entity schema files, relative to the repository root.
const (
	MasterResumeSchema   = "schemas/master_resume.schema.json"
	JobDescriptionSchema = "schemas/job_description.schema.json"
	ApplicationSchema    = "schemas/application.schema.json"
)

var (
	schemaCacheMu sync.RWMutex
	schemaCache   = make(map[string]string)
)

// loadSchema reads and caches a schema file's content.
func loadSchema(relativePath string) (string, error) {
	schemaCacheMu.RLock()
	content, ok := schemaCache[relativePath]
	schemaCacheMu.RUnlock()
	if ok {
		return content, nil
	}

	path := ResolveSchemaPath(relativePath)
	if path == "" {
		return "", &SchemaLoadError{Path: relativePath, Message: "schema file not found"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SchemaLoadError{Path: path, Message: "failed to read schema", Cause: err}
	}

	schemaCacheMu.Lock()
	schemaCache[relativePath] = string(data)
	schemaCacheMu.Unlock()
	return string(data), nil
}

// ValidateEntity validates an entity JSON payload against its schema.
func ValidateEntity(schemaFile string, payload []byte) error {
	content, err := loadSchema(schemaFile)
	if err != nil {
		return err
	}
	return ValidateJSONString(content, string(payload))
}

// ClearCache drops cached schema content. Used by tests.
func ClearCache() {
	schemaCacheMu.Lock()
	schemaCache = make(map[string]string)
	schemaCacheMu.Unlock()
}
