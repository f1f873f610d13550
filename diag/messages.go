package diag

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// All user-visible diagnostic text funnels through one printer so that
// formatting (and eventually translation) has a single seam.
var printer = message.NewPrinter(language.English)

// Shape errors at record synthesis time.

func RecordFirstArgMustBeName() string {
	return printer.Sprintf("expected string literal name as first argument")
}

func RecordSecondArgMustBeDict() string {
	return printer.Sprintf("expected dict of field names and types as second argument")
}

func RecordKeyMustBeString() string {
	return printer.Sprintf("record field name must be a non-empty string literal")
}

func RecordDuplicateField(name string) string {
	return printer.Sprintf("record field %q is already defined", name)
}

func RecordExtraArgs(name string) string {
	return printer.Sprintf("unexpected keyword argument %q", name)
}

func RecordTotalParamInvalid() string {
	return printer.Sprintf("total parameter must be the literal True or False")
}

func RecordTotalNotAllowed() string {
	return printer.Sprintf("total parameter is not allowed with keyword fields")
}

func RecordAssignedName(declared, assigned string) string {
	return printer.Sprintf("record declared name %q does not match assigned name %q", declared, assigned)
}

// Structural mismatch errors at assignability time.

func RecordFieldMissing(name, typeName string) string {
	return printer.Sprintf("%q is missing from %q", name, typeName)
}

func RecordFieldRequired(name, typeName string) string {
	return printer.Sprintf("%q is required in %q", name, typeName)
}

func RecordFieldNotRequired(name, typeName string) string {
	return printer.Sprintf("%q is not required in %q", name, typeName)
}

func RecordFieldReadOnly(name, typeName string) string {
	return printer.Sprintf("%q is read-only in %q", name, typeName)
}

func RecordFieldTypeMismatch(name string, srcType, destType string) string {
	return printer.Sprintf("%q is of type %q, which is not assignable to type %q", name, srcType, destType)
}

func RecordFieldUndefined(name, typeName string) string {
	return printer.Sprintf("%q is not a defined field in %q", name, typeName)
}

func RecordKeyMustBeStringLiteral(typeName string) string {
	return printer.Sprintf("record %q keys must be string literals", typeName)
}

// Access errors through subscripting.

func RecordKeyPossiblyMissing(name, typeName string) string {
	return printer.Sprintf("%q is not required in %q and may be missing", name, typeName)
}

func RecordKeyReadOnly(name, typeName string) string {
	return printer.Sprintf("%q is read-only in %q and cannot be written", name, typeName)
}

func RecordKeyRequiredDeleted(name, typeName string) string {
	return printer.Sprintf("%q is required in %q and cannot be deleted", name, typeName)
}

func AccessError(category, typeName string) string {
	return printer.Sprintf("%s error for %q", category, typeName)
}

func TypeAssignmentMismatch(srcType, destType string) string {
	return printer.Sprintf("type %q is not assignable to type %q", srcType, destType)
}
