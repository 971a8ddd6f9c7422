// Package validate checks a converted model and reports every rule
// violation it finds as a plain string prefixed by the configuration path.
// It never stops at the first problem and never mutates the model.
package validate
