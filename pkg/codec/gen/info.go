package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/structtag"
)

const codecImport = "github.com/helium/proto-go/pkg/codec"

var forbiddenType = []string{
	"uint8",
	"int8",
	"uint16",
	"int16",
	"float",
	"map",
	"[][][]",
}

var bytesType = map[string]bool{
	"[]byte":          true,
	"codec.Hex":       true,
	"codec.Base58":    true,
	"codec.Base64":    true,
	"codec.Base64URL": true,
}

var enumType = map[string]bool{
	"codec.Origin":     true,
	"codec.RewardType": true,
}

type packageInfo struct {
	Name     string
	FileName string
	Imports  []string
	Structs  []*structInfo
}

func (i *packageInfo) Validate() error {
	for _, s := range i.Structs {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (i *packageInfo) Sort() {
	for _, s := range i.Structs {
		s.Sort()
	}
}

// CleanImports keeps the imports used by field types. codec package is always imported.
func (i *packageInfo) CleanImports() {
	used := map[string]bool{}
	for _, imp := range i.Imports {
		index := strings.LastIndex(imp, "/")
		used[imp[index+1:]] = false
	}
	for _, s := range i.Structs {
		for _, f := range s.Fields {
			for name := range used {
				if strings.Contains(f.Type, name+".") {
					used[name] = true
				}
			}
		}
	}
	newImports := []string{codecImport}
	for _, imp := range i.Imports {
		if imp == codecImport {
			continue
		}
		index := strings.LastIndex(imp, "/")
		if used[imp[index+1:]] {
			newImports = append(newImports, imp)
		}
	}
	i.Imports = newImports
}

type structInfo struct {
	Name   string
	Fields []*fieldInfo
}

func (i *structInfo) Validate() error {
	fieldNumberMap := map[int]bool{}
	for _, f := range i.Fields {
		if fieldNumberMap[f.FieldNumber] {
			return fmt.Errorf("fieldNumber %d is duplicated on field %s", f.FieldNumber, f.Name)
		}
		fieldNumberMap[f.FieldNumber] = true
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (i *structInfo) Sort() {
	sort.Slice(i.Fields, func(j, k int) bool {
		return i.Fields[j].FieldNumber < i.Fields[k].FieldNumber
	})
}

type fieldInfo struct {
	Name        string
	Type        string
	FieldNumber int
}

func (i *fieldInfo) Validate() error {
	if i.FieldNumber < 1 {
		return fmt.Errorf("fieldNumber must be greater than 0 but got %d", i.FieldNumber)
	}
	for _, keyword := range forbiddenType {
		if strings.Contains(i.Type, keyword) {
			return fmt.Errorf("field contain forbidden keyword %s in %s", keyword, i.Type)
		}
	}
	if strings.HasPrefix(i.Type, "[]codec.") {
		return fmt.Errorf("repeated codec type %s is not supported", i.Type)
	}
	return nil
}

func (i *fieldInfo) EncodeLogic() string {
	switch {
	case i.Type == "bool":
		return fmt.Sprintf("writer.WriteBool(%d, e.%s)", i.FieldNumber, i.Name)
	case i.Type == "uint64":
		return fmt.Sprintf("writer.WriteUInt(%d, e.%s)", i.FieldNumber, i.Name)
	case i.Type == "codec.U64Base64":
		return fmt.Sprintf("writer.WriteUInt(%d, uint64(e.%s))", i.FieldNumber, i.Name)
	case i.Type == "int32":
		return fmt.Sprintf("writer.WriteInt32(%d, e.%s)", i.FieldNumber, i.Name)
	case enumType[i.Type]:
		return fmt.Sprintf("writer.WriteEnum(%d, int32(e.%s))", i.FieldNumber, i.Name)
	case i.Type == "string":
		return fmt.Sprintf("writer.WriteString(%d, e.%s)", i.FieldNumber, i.Name)
	case bytesType[i.Type]:
		return fmt.Sprintf("writer.WriteBytes(%d, e.%s)", i.FieldNumber, i.Name)
	case i.Type == "[][]byte":
		return fmt.Sprintf("writer.WriteBytesArray(%d, e.%s)", i.FieldNumber, i.Name)
	case strings.HasPrefix(i.Type, "[]"):
		return fmt.Sprintf(`for _, val := range e.%s {
		if val == nil {
			continue
		}
		if err := writer.WriteEncodable(%d, val); err != nil {
			return nil, err
		}
	}`, i.Name, i.FieldNumber)
	default:
		return fmt.Sprintf(`if e.%s != nil {
		if err := writer.WriteEncodable(%d, e.%s); err != nil {
			return nil, err
		}
	}`, i.Name, i.FieldNumber, i.Name)
	}
}

func decodeReturn(fn, assign string) string {
	return fmt.Sprintf(`{
		val, err := %s
		if err != nil {
			return err
		}
		%s
	}`, fn, assign)
}

func (i *fieldInfo) DecodeLogic() string {
	return i.decodeLogic("false")
}

func (i *fieldInfo) DecodeStrictLogic() string {
	return i.decodeLogic("true")
}

func (i *fieldInfo) decodeLogic(strict string) string {
	assign := fmt.Sprintf("e.%s = val", i.Name)
	switch {
	case i.Type == "bool":
		return decodeReturn(fmt.Sprintf("reader.ReadBool(%d, %s)", i.FieldNumber, strict), assign)
	case i.Type == "uint64":
		return decodeReturn(fmt.Sprintf("reader.ReadUInt(%d, %s)", i.FieldNumber, strict), assign)
	case i.Type == "codec.U64Base64":
		return decodeReturn(fmt.Sprintf("reader.ReadUInt(%d, %s)", i.FieldNumber, strict), fmt.Sprintf("e.%s = %s(val)", i.Name, i.Type))
	case i.Type == "int32":
		return decodeReturn(fmt.Sprintf("reader.ReadInt32(%d, %s)", i.FieldNumber, strict), assign)
	case enumType[i.Type]:
		return decodeReturn(fmt.Sprintf("reader.ReadEnum(%d, %s)", i.FieldNumber, strict), fmt.Sprintf("e.%s = %s(val)", i.Name, i.Type))
	case i.Type == "string":
		return decodeReturn(fmt.Sprintf("reader.ReadString(%d, %s)", i.FieldNumber, strict), assign)
	case bytesType[i.Type]:
		return decodeReturn(fmt.Sprintf("reader.ReadBytes(%d, %s)", i.FieldNumber, strict), assign)
	case i.Type == "[][]byte":
		return decodeReturn(fmt.Sprintf("reader.ReadBytesArray(%d)", i.FieldNumber), assign)
	case strings.HasPrefix(i.Type, "[]"):
		newableType := strings.TrimPrefix(i.Type, "[]*")
		pointerType := strings.TrimPrefix(i.Type, "[]")
		fn := fmt.Sprintf("reader.ReadDecodables(%d, func() codec.DecodableReader { return new(%s) })", i.FieldNumber, newableType)
		return fmt.Sprintf(`{
		vals, err := %s
		if err != nil {
			return err
		}
		r := make(%s, len(vals))
		for i, v := range vals {
			r[i] = v.(%s)
		}
		e.%s = r
	}`, fn, i.Type, pointerType, i.Name)
	default:
		newableType := strings.TrimPrefix(i.Type, "*")
		fn := fmt.Sprintf("reader.ReadDecodable(%d, func() codec.DecodableReader { return new(%s) }, %s)", i.FieldNumber, newableType, strict)
		return decodeReturn(fn, fmt.Sprintf(`if val != nil {
			e.%s = val.(%s)
		}`, i.Name, i.Type))
	}
}

func parsePackageInfo(fileName string, src []byte) (*packageInfo, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, fileName, src, parser.AllErrors)
	if err != nil {
		return nil, err
	}
	info := &packageInfo{
		Name:     node.Name.Name,
		FileName: fileName,
		Imports:  []string{},
		Structs:  []*structInfo{},
	}
	ast.Inspect(node, func(n ast.Node) bool {
		switch t := n.(type) {
		case *ast.TypeSpec:
			e, ok := t.Type.(*ast.StructType)
			if !ok {
				return true
			}
			structInfo := &structInfo{
				Name:   t.Name.Name,
				Fields: []*fieldInfo{},
			}
			for _, f := range e.Fields.List {
				if f.Tag == nil || len(f.Names) == 0 {
					continue
				}
				// calculate tag, if err, ignore the field
				fieldNumber, err := getFieldNumber(f.Tag.Value)
				if err != nil {
					continue
				}
				structInfo.Fields = append(structInfo.Fields, &fieldInfo{
					Name:        f.Names[0].Name,
					Type:        string(src[fset.Position(f.Type.Pos()).Offset:fset.Position(f.Type.End()).Offset]),
					FieldNumber: fieldNumber,
				})
			}
			if len(structInfo.Fields) > 0 {
				info.Structs = append(info.Structs, structInfo)
			}
		case *ast.ImportSpec:
			info.Imports = append(info.Imports, strings.ReplaceAll(t.Path.Value, "\"", ""))
		}
		return true
	})
	return info, nil
}

func getFieldNumber(val string) (int, error) {
	tag, err := structtag.Parse(strings.ReplaceAll(val, "`", ""))
	if err != nil {
		return 0, err
	}
	res, err := tag.Get("fieldNumber")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(res.Name)
}
