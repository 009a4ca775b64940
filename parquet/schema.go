package parquet

import "github.com/apache/thrift/lib/go/thrift"

// SchemaElement is one entry of FileMetaData.Schema: either the root (with
// NumChildren set and no Type) or a flat leaf column.
type SchemaElement struct {
	Type            *Type
	RepetitionType  *FieldRepetitionType
	Name            string
	NumChildren     *int32
	ConvertedType   *ConvertedType
	LogicalType     *LogicalType
}

func (s *SchemaElement) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("SchemaElement"); err != nil {
		return err
	}
	if s.Type != nil {
		if err := p.WriteFieldBegin("type", thrift.I32, 1); err != nil {
			return err
		}
		if err := p.WriteI32(int32(*s.Type)); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if s.RepetitionType != nil {
		if err := p.WriteFieldBegin("repetition_type", thrift.I32, 3); err != nil {
			return err
		}
		if err := p.WriteI32(int32(*s.RepetitionType)); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if err := p.WriteFieldBegin("name", thrift.STRING, 4); err != nil {
		return err
	}
	if err := p.WriteString(s.Name); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if s.NumChildren != nil {
		if err := p.WriteFieldBegin("num_children", thrift.I32, 5); err != nil {
			return err
		}
		if err := p.WriteI32(*s.NumChildren); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if s.ConvertedType != nil {
		if err := p.WriteFieldBegin("converted_type", thrift.I32, 6); err != nil {
			return err
		}
		if err := p.WriteI32(int32(*s.ConvertedType)); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if s.LogicalType != nil {
		if err := p.WriteFieldBegin("logicalType", thrift.STRUCT, 10); err != nil {
			return err
		}
		if err := s.LogicalType.Write(p); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(); err != nil {
		return err
	}
	return p.WriteStructEnd()
}

func (s *SchemaElement) Read(p thrift.TProtocol) error {
	if _, err := p.ReadStructBegin(); err != nil {
		return err
	}
	for {
		_, fieldTypeID, id, err := p.ReadFieldBegin()
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			t := Type(v)
			s.Type = &t
		case 3:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			r := FieldRepetitionType(v)
			s.RepetitionType = &r
		case 4:
			v, err := p.ReadString()
			if err != nil {
				return err
			}
			s.Name = v
		case 5:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			s.NumChildren = &v
		case 6:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			c := ConvertedType(v)
			s.ConvertedType = &c
		case 10:
			lt := &LogicalType{}
			if err := lt.Read(p); err != nil {
				return err
			}
			s.LogicalType = lt
		default:
			if err := p.Skip(fieldTypeID); err != nil {
				return err
			}
		}
		if err := p.ReadFieldEnd(); err != nil {
			return err
		}
	}
	return p.ReadStructEnd()
}
