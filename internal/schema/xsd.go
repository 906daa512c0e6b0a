// Package schema validates generated XML against an XSD. The engine covers
// the schema subset the bundled pain.001 definition uses: global elements,
// complex types with sequences, simpleContent extensions with attributes,
// and simple-type restrictions (pattern, length, enumeration,
// fractionDigits). It is deliberately not a full XSD processor: documents
// that pass here can still fail validation against the complete ISO 20022
// schema set. That trade keeps schema validation dependency-free and
// available offline.
package schema

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
	"strings"
)

const xsdNamespace = "http://www.w3.org/2001/XMLSchema"

// Schema is a parsed XSD subset ready to validate instance documents.
type Schema struct {
	TargetNamespace string
	qualified       bool
	elements        map[string]*elementDecl
	complexTypes    map[string]*complexType
	simpleTypes     map[string]*simpleType
	rootName        string
}

type elementDecl struct {
	name      string
	typeRef   string
	inline    *complexType
	minOccurs int
	maxOccurs int // -1 means unbounded
}

type complexType struct {
	name      string
	sequence  []*elementDecl
	attrs     []*attributeDecl
	extension *simpleContentExtension
}

type simpleContentExtension struct {
	base  string
	attrs []*attributeDecl
}

type attributeDecl struct {
	name     string
	typeRef  string
	required bool
}

type simpleType struct {
	name       string
	base       string
	pattern    *regexp.Regexp
	patternSrc string
	minLength  *int
	maxLength  *int
	enum       []string
	fracDigits *int
}

// raw XSD document model for parsing.
type xsdSchema struct {
	XMLName            xml.Name         `xml:"schema"`
	TargetNamespace    string           `xml:"targetNamespace,attr"`
	ElementFormDefault string           `xml:"elementFormDefault,attr"`
	Elements           []xsdElement     `xml:"element"`
	ComplexTypes       []xsdComplexType `xml:"complexType"`
	SimpleTypes        []xsdSimpleType  `xml:"simpleType"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	ComplexType *xsdComplexType `xml:"complexType"`
}

type xsdComplexType struct {
	Name          string            `xml:"name,attr"`
	Sequence      *xsdSequence      `xml:"sequence"`
	SimpleContent *xsdSimpleContent `xml:"simpleContent"`
	Attributes    []xsdAttribute    `xml:"attribute"`
}

type xsdSequence struct {
	Elements []xsdElement `xml:"element"`
}

type xsdSimpleContent struct {
	Extension *xsdExtension `xml:"extension"`
}

type xsdExtension struct {
	Base       string         `xml:"base,attr"`
	Attributes []xsdAttribute `xml:"attribute"`
}

type xsdAttribute struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Use  string `xml:"use,attr"`
}

type xsdSimpleType struct {
	Name        string          `xml:"name,attr"`
	Restriction *xsdRestriction `xml:"restriction"`
}

type xsdRestriction struct {
	Base         string     `xml:"base,attr"`
	Patterns     []xsdFacet `xml:"pattern"`
	MinLength    *xsdFacet  `xml:"minLength"`
	MaxLength    *xsdFacet  `xml:"maxLength"`
	Enumerations []xsdFacet `xml:"enumeration"`
	FracDigits   *xsdFacet  `xml:"fractionDigits"`
}

type xsdFacet struct {
	Value string `xml:"value,attr"`
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a Schema from raw XSD bytes.
func Parse(data []byte) (*Schema, error) {
	var raw xsdSchema
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if raw.XMLName.Space != xsdNamespace {
		return nil, fmt.Errorf("root element is not an XML Schema (namespace %q)", raw.XMLName.Space)
	}

	s := &Schema{
		TargetNamespace: raw.TargetNamespace,
		qualified:       raw.ElementFormDefault == "qualified",
		elements:        make(map[string]*elementDecl),
		complexTypes:    make(map[string]*complexType),
		simpleTypes:     make(map[string]*simpleType),
	}

	for _, st := range raw.SimpleTypes {
		parsed, err := parseSimpleType(st)
		if err != nil {
			return nil, err
		}
		s.simpleTypes[parsed.name] = parsed
	}
	for _, ct := range raw.ComplexTypes {
		s.complexTypes[ct.Name] = parseComplexType(ct)
	}
	for _, el := range raw.Elements {
		decl := parseElementDecl(el)
		s.elements[decl.name] = decl
		if s.rootName == "" {
			s.rootName = decl.name
		}
	}

	if len(s.elements) == 0 {
		return nil, fmt.Errorf("schema declares no global elements")
	}
	return s, nil
}

func parseElementDecl(el xsdElement) *elementDecl {
	decl := &elementDecl{
		name:      el.Name,
		typeRef:   localName(el.Type),
		minOccurs: 1,
		maxOccurs: 1,
	}
	if el.MinOccurs != "" {
		fmt.Sscanf(el.MinOccurs, "%d", &decl.minOccurs)
	}
	if el.MaxOccurs == "unbounded" {
		decl.maxOccurs = -1
	} else if el.MaxOccurs != "" {
		fmt.Sscanf(el.MaxOccurs, "%d", &decl.maxOccurs)
	}
	if el.ComplexType != nil {
		decl.inline = parseComplexType(*el.ComplexType)
	}
	return decl
}

func parseComplexType(ct xsdComplexType) *complexType {
	out := &complexType{name: ct.Name}
	if ct.Sequence != nil {
		for _, el := range ct.Sequence.Elements {
			out.sequence = append(out.sequence, parseElementDecl(el))
		}
	}
	for _, a := range ct.Attributes {
		out.attrs = append(out.attrs, parseAttributeDecl(a))
	}
	if ct.SimpleContent != nil && ct.SimpleContent.Extension != nil {
		ext := &simpleContentExtension{base: localName(ct.SimpleContent.Extension.Base)}
		for _, a := range ct.SimpleContent.Extension.Attributes {
			ext.attrs = append(ext.attrs, parseAttributeDecl(a))
		}
		out.extension = ext
	}
	return out
}

func parseAttributeDecl(a xsdAttribute) *attributeDecl {
	return &attributeDecl{
		name:     a.Name,
		typeRef:  localName(a.Type),
		required: a.Use == "required",
	}
}

func parseSimpleType(st xsdSimpleType) (*simpleType, error) {
	out := &simpleType{name: st.Name, base: "string"}
	r := st.Restriction
	if r == nil {
		return out, nil
	}
	out.base = localName(r.Base)

	if len(r.Patterns) > 0 {
		src := r.Patterns[0].Value
		re, err := regexp.Compile("^(?:" + src + ")$")
		if err != nil {
			return nil, fmt.Errorf("simple type %s has unsupported pattern %q: %w", st.Name, src, err)
		}
		out.pattern = re
		out.patternSrc = src
	}
	if r.MinLength != nil {
		n := atoiDefault(r.MinLength.Value, 0)
		out.minLength = &n
	}
	if r.MaxLength != nil {
		n := atoiDefault(r.MaxLength.Value, 0)
		out.maxLength = &n
	}
	for _, e := range r.Enumerations {
		out.enum = append(out.enum, e.Value)
	}
	if r.FracDigits != nil {
		n := atoiDefault(r.FracDigits.Value, 0)
		out.fracDigits = &n
	}
	return out, nil
}

func atoiDefault(s string, def int) int {
	n := def
	fmt.Sscanf(s, "%d", &n)
	return n
}

// localName strips a namespace prefix from a QName reference.
func localName(qname string) string {
	if i := strings.LastIndex(qname, ":"); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// ValidateDocument checks a parsed instance document against the schema and
// returns one human-readable issue per violation.
func (s *Schema) ValidateDocument(root *element) []string {
	v := &validation{schema: s}

	decl, ok := s.elements[root.name]
	if !ok {
		v.addf(root, "unexpected root element <%s>; expected <%s>", root.name, s.rootName)
		return v.issues
	}
	if s.TargetNamespace != "" && root.ns != s.TargetNamespace {
		v.addf(root, "root element namespace %q does not match %q", root.ns, s.TargetNamespace)
	}
	v.validateElement(decl, root)
	return v.issues
}

type validation struct {
	schema *Schema
	issues []string
}

func (v *validation) addf(el *element, format string, args ...any) {
	v.issues = append(v.issues, fmt.Sprintf("%s: %s", el.pos(), fmt.Sprintf(format, args...)))
}

func (v *validation) validateElement(decl *elementDecl, el *element) {
	ct := decl.inline
	if ct == nil && decl.typeRef != "" {
		if named, ok := v.schema.complexTypes[decl.typeRef]; ok {
			ct = named
		} else {
			// Simple-typed element: named simple type or builtin.
			v.validateText(el, decl.typeRef, strings.TrimSpace(el.text.String()))
			if len(el.children) > 0 {
				v.addf(el.children[0], "element <%s> does not allow child elements", el.name)
			}
			return
		}
	}
	if ct == nil {
		// No type information; accept anything.
		return
	}

	if ct.extension != nil {
		v.validateText(el, ct.extension.base, strings.TrimSpace(el.text.String()))
		v.validateAttributes(el, ct.extension.attrs)
		if len(el.children) > 0 {
			v.addf(el.children[0], "element <%s> does not allow child elements", el.name)
		}
		return
	}

	v.validateAttributes(el, ct.attrs)
	if text := strings.TrimSpace(el.text.String()); text != "" && len(ct.sequence) > 0 {
		v.addf(el, "element <%s> has unexpected text content %q", el.name, truncate(text, 40))
	}
	v.validateSequence(el, ct.sequence)
}

// validateSequence matches the element's children against the declared
// sequence in order, enforcing occurrence bounds.
func (v *validation) validateSequence(parent *element, sequence []*elementDecl) {
	idx := 0
	for _, decl := range sequence {
		count := 0
		for idx < len(parent.children) && parent.children[idx].name == decl.name {
			child := parent.children[idx]
			if v.schema.qualified && v.schema.TargetNamespace != "" && child.ns != v.schema.TargetNamespace {
				v.addf(child, "element <%s> is in namespace %q; expected %q", child.name, child.ns, v.schema.TargetNamespace)
			}
			v.validateElement(decl, child)
			idx++
			count++
			if decl.maxOccurs != -1 && count > decl.maxOccurs {
				v.addf(child, "element <%s> appears more than %d time(s) inside <%s>", child.name, decl.maxOccurs, parent.name)
			}
		}
		if count < decl.minOccurs {
			v.addf(parent, "element <%s> is missing required child <%s>", parent.name, decl.name)
		}
	}
	for ; idx < len(parent.children); idx++ {
		v.addf(parent.children[idx], "unexpected element <%s> inside <%s>", parent.children[idx].name, parent.name)
	}
}

func (v *validation) validateAttributes(el *element, decls []*attributeDecl) {
	for _, decl := range decls {
		value, ok := el.attr(decl.name)
		if !ok {
			if decl.required {
				v.addf(el, "element <%s> is missing required attribute %q", el.name, decl.name)
			}
			continue
		}
		if decl.typeRef != "" {
			v.validateText(el, decl.typeRef, value)
		}
	}

	declared := func(name string) bool {
		for _, d := range decls {
			if d.name == name {
				return true
			}
		}
		return false
	}
	for _, a := range el.attrs {
		if a.ns == "http://www.w3.org/2001/XMLSchema-instance" {
			continue
		}
		if !declared(a.name) {
			v.addf(el, "element <%s> has undeclared attribute %q", el.name, a.name)
		}
	}
}

// validateText checks a text value against a named simple type or an XSD
// builtin.
func (v *validation) validateText(el *element, typeRef, value string) {
	if st, ok := v.schema.simpleTypes[typeRef]; ok {
		v.validateSimpleType(el, st, value)
		return
	}
	v.validateBuiltin(el, typeRef, value)
}

func (v *validation) validateSimpleType(el *element, st *simpleType, value string) {
	v.validateBuiltin(el, st.base, value)

	if st.pattern != nil && !st.pattern.MatchString(value) {
		v.addf(el, "value %q of <%s> does not match pattern %q", truncate(value, 40), el.name, st.patternSrc)
	}
	if st.minLength != nil && len(value) < *st.minLength {
		v.addf(el, "value of <%s> is shorter than %d character(s)", el.name, *st.minLength)
	}
	if st.maxLength != nil && len(value) > *st.maxLength {
		v.addf(el, "value of <%s> exceeds %d character(s)", el.name, *st.maxLength)
	}
	if len(st.enum) > 0 && !contains(st.enum, value) {
		v.addf(el, "value %q of <%s> is not one of %s", truncate(value, 40), el.name, strings.Join(st.enum, ", "))
	}
	if st.fracDigits != nil {
		if i := strings.IndexByte(value, '.'); i >= 0 && len(value)-i-1 > *st.fracDigits {
			v.addf(el, "value %q of <%s> has more than %d fraction digit(s)", value, el.name, *st.fracDigits)
		}
	}
}

var (
	decimalLexical  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	dateLexical     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	dateTimeLexical = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
)

func (v *validation) validateBuiltin(el *element, base, value string) {
	switch base {
	case "decimal":
		if !decimalLexical.MatchString(value) {
			v.addf(el, "value %q of <%s> is not a valid decimal", truncate(value, 40), el.name)
		}
	case "date":
		if !dateLexical.MatchString(value) {
			v.addf(el, "value %q of <%s> is not a valid date", truncate(value, 40), el.name)
		}
	case "dateTime":
		if !dateTimeLexical.MatchString(value) {
			v.addf(el, "value %q of <%s> is not a valid dateTime", truncate(value, 40), el.name)
		}
	case "boolean":
		if value != "true" && value != "false" && value != "0" && value != "1" {
			v.addf(el, "value %q of <%s> is not a valid boolean", truncate(value, 40), el.name)
		}
	default:
		// string and unrecognized builtins accept any text.
	}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
