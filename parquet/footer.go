package parquet

import "github.com/apache/thrift/lib/go/thrift"

// RowGroup is a horizontal partition of the file. This core always emits
// exactly one.
type RowGroup struct {
	Columns       []*ColumnChunk
	TotalByteSize int64
	NumRows       int64
}

func (r *RowGroup) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("RowGroup"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("columns", thrift.LIST, 1); err != nil {
		return err
	}
	if err := p.WriteListBegin(thrift.STRUCT, len(r.Columns)); err != nil {
		return err
	}
	for _, c := range r.Columns {
		if err := c.Write(p); err != nil {
			return err
		}
	}
	if err := p.WriteListEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("total_byte_size", thrift.I64, 2); err != nil {
		return err
	}
	if err := p.WriteI64(r.TotalByteSize); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("num_rows", thrift.I64, 3); err != nil {
		return err
	}
	if err := p.WriteI64(r.NumRows); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldStop(); err != nil {
		return err
	}
	return p.WriteStructEnd()
}

func (r *RowGroup) Read(p thrift.TProtocol) error {
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
			_, size, err := p.ReadListBegin()
			if err != nil {
				return err
			}
			r.Columns = make([]*ColumnChunk, size)
			for i := 0; i < size; i++ {
				cc := &ColumnChunk{}
				if err := cc.Read(p); err != nil {
					return err
				}
				r.Columns[i] = cc
			}
			if err := p.ReadListEnd(); err != nil {
				return err
			}
		case 2:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			r.TotalByteSize = v
		case 3:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			r.NumRows = v
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

// FileMetaData is the Parquet footer: schema, row count, row groups and
// free-form key/value metadata.
type FileMetaData struct {
	Version          int32
	Schema           []*SchemaElement
	NumRows          int64
	RowGroups        []*RowGroup
	KeyValueMetadata []*KeyValue
	CreatedBy        *string
}

func (f *FileMetaData) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("FileMetaData"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("version", thrift.I32, 1); err != nil {
		return err
	}
	if err := p.WriteI32(f.Version); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("schema", thrift.LIST, 2); err != nil {
		return err
	}
	if err := p.WriteListBegin(thrift.STRUCT, len(f.Schema)); err != nil {
		return err
	}
	for _, s := range f.Schema {
		if err := s.Write(p); err != nil {
			return err
		}
	}
	if err := p.WriteListEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("num_rows", thrift.I64, 3); err != nil {
		return err
	}
	if err := p.WriteI64(f.NumRows); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("row_groups", thrift.LIST, 4); err != nil {
		return err
	}
	if err := p.WriteListBegin(thrift.STRUCT, len(f.RowGroups)); err != nil {
		return err
	}
	for _, rg := range f.RowGroups {
		if err := rg.Write(p); err != nil {
			return err
		}
	}
	if err := p.WriteListEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if len(f.KeyValueMetadata) > 0 {
		if err := p.WriteFieldBegin("key_value_metadata", thrift.LIST, 5); err != nil {
			return err
		}
		if err := p.WriteListBegin(thrift.STRUCT, len(f.KeyValueMetadata)); err != nil {
			return err
		}
		for _, kv := range f.KeyValueMetadata {
			if err := kv.Write(p); err != nil {
				return err
			}
		}
		if err := p.WriteListEnd(); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if f.CreatedBy != nil {
		if err := p.WriteFieldBegin("created_by", thrift.STRING, 6); err != nil {
			return err
		}
		if err := p.WriteString(*f.CreatedBy); err != nil {
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

func (f *FileMetaData) Read(p thrift.TProtocol) error {
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
			f.Version = v
		case 2:
			_, size, err := p.ReadListBegin()
			if err != nil {
				return err
			}
			f.Schema = make([]*SchemaElement, size)
			for i := 0; i < size; i++ {
				se := &SchemaElement{}
				if err := se.Read(p); err != nil {
					return err
				}
				f.Schema[i] = se
			}
			if err := p.ReadListEnd(); err != nil {
				return err
			}
		case 3:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			f.NumRows = v
		case 4:
			_, size, err := p.ReadListBegin()
			if err != nil {
				return err
			}
			f.RowGroups = make([]*RowGroup, size)
			for i := 0; i < size; i++ {
				rg := &RowGroup{}
				if err := rg.Read(p); err != nil {
					return err
				}
				f.RowGroups[i] = rg
			}
			if err := p.ReadListEnd(); err != nil {
				return err
			}
		case 5:
			_, size, err := p.ReadListBegin()
			if err != nil {
				return err
			}
			f.KeyValueMetadata = make([]*KeyValue, size)
			for i := 0; i < size; i++ {
				kv := &KeyValue{}
				if err := kv.Read(p); err != nil {
					return err
				}
				f.KeyValueMetadata[i] = kv
			}
			if err := p.ReadListEnd(); err != nil {
				return err
			}
		case 6:
			v, err := p.ReadString()
			if err != nil {
				return err
			}
			f.CreatedBy = &v
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
