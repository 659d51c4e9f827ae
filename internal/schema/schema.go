// Package schema performs structural validation of regulators configuration
// documents against the regulators JSON schema. It runs before the semantic
// checks; a document that fails here never reaches them.
package schema

import (
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaResource is the resource name the schema file is registered under.
// The regulators schema is self-contained, so the name never resolves
// externally.
const schemaResource = "regulators-config-schema.json"

// Error describes a structural validation failure. Causes holds one message
// per leaf violation, each prefixed with its instance location.
type Error struct {
	Causes []string
}

func (e *Error) Error() string {
	return "schema validation failed:\n  " + strings.Join(e.Causes, "\n  ")
}

// Checker validates documents against one compiled schema.
type Checker struct {
	schema *jsonschema.Schema
}

// NewChecker compiles the schema at path.
func NewChecker(path string) (*Checker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	defer f.Close()

	doc, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return nil, fmt.Errorf("parsing schema file %s: %w", path, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaResource, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	sch, err := c.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", path, err)
	}
	return &Checker{schema: sch}, nil
}

// Check validates doc and returns an *Error describing every leaf violation
// when the document does not conform.
func (c *Checker) Check(doc any) error {
	err := c.schema.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	var causes []string
	for _, cause := range flatten(ve) {
		loc := "/" + strings.Join(cause.InstanceLocation, "/")
		causes = append(causes, fmt.Sprintf("%s: %v", loc, cause.ErrorKind))
	}
	return &Error{Causes: causes}
}

// flatten recursively collects the leaf causes of a validation error tree.
func flatten(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		leaves = append(leaves, flatten(cause)...)
	}
	return leaves
}
