package parquet

import "github.com/apache/thrift/lib/go/thrift"

// KeyValue is one entry of FileMetaData.KeyValueMetadata.
type KeyValue struct {
	Key   string
	Value *string
}

func (kv *KeyValue) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("KeyValue"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("key", thrift.STRING, 1); err != nil {
		return err
	}
	if err := p.WriteString(kv.Key); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if kv.Value != nil {
		if err := p.WriteFieldBegin("value", thrift.STRING, 2); err != nil {
			return err
		}
		if err := p.WriteString(*kv.Value); err != nil {
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

func (kv *KeyValue) Read(p thrift.TProtocol) error {
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
			v, err := p.ReadString()
			if err != nil {
				return err
			}
			kv.Key = v
		case 2:
			v, err := p.ReadString()
			if err != nil {
				return err
			}
			kv.Value = &v
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

// ColumnMetaData is the per-column-chunk descriptor: encoding set, codec,
// sizes and offsets. Every field but DictionaryPageOffset is populated for
// every column; DictionaryPageOffset is set only for RLE_DICTIONARY columns.
type ColumnMetaData struct {
	Type                  Type
	Encodings             []Encoding
	PathInSchema          []string
	Codec                 CompressionCodec
	NumValues             int64
	TotalUncompressedSize int64
	TotalCompressedSize   int64
	DataPageOffset        int64
	DictionaryPageOffset  *int64
}

func (c *ColumnMetaData) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("ColumnMetaData"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("type", thrift.I32, 1); err != nil {
		return err
	}
	if err := p.WriteI32(int32(c.Type)); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("encodings", thrift.LIST, 2); err != nil {
		return err
	}
	if err := p.WriteListBegin(thrift.I32, len(c.Encodings)); err != nil {
		return err
	}
	for _, e := range c.Encodings {
		if err := p.WriteI32(int32(e)); err != nil {
			return err
		}
	}
	if err := p.WriteListEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("path_in_schema", thrift.LIST, 3); err != nil {
		return err
	}
	if err := p.WriteListBegin(thrift.STRING, len(c.PathInSchema)); err != nil {
		return err
	}
	for _, s := range c.PathInSchema {
		if err := p.WriteString(s); err != nil {
			return err
		}
	}
	if err := p.WriteListEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("codec", thrift.I32, 4); err != nil {
		return err
	}
	if err := p.WriteI32(int32(c.Codec)); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("num_values", thrift.I64, 5); err != nil {
		return err
	}
	if err := p.WriteI64(c.NumValues); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("total_uncompressed_size", thrift.I64, 6); err != nil {
		return err
	}
	if err := p.WriteI64(c.TotalUncompressedSize); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("total_compressed_size", thrift.I64, 7); err != nil {
		return err
	}
	if err := p.WriteI64(c.TotalCompressedSize); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("data_page_offset", thrift.I64, 9); err != nil {
		return err
	}
	if err := p.WriteI64(c.DataPageOffset); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if c.DictionaryPageOffset != nil {
		if err := p.WriteFieldBegin("dictionary_page_offset", thrift.I64, 11); err != nil {
			return err
		}
		if err := p.WriteI64(*c.DictionaryPageOffset); err != nil {
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

func (c *ColumnMetaData) Read(p thrift.TProtocol) error {
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
			c.Type = Type(v)
		case 2:
			_, size, err := p.ReadListBegin()
			if err != nil {
				return err
			}
			c.Encodings = make([]Encoding, size)
			for i := 0; i < size; i++ {
				v, err := p.ReadI32()
				if err != nil {
					return err
				}
				c.Encodings[i] = Encoding(v)
			}
			if err := p.ReadListEnd(); err != nil {
				return err
			}
		case 3:
			_, size, err := p.ReadListBegin()
			if err != nil {
				return err
			}
			c.PathInSchema = make([]string, size)
			for i := 0; i < size; i++ {
				v, err := p.ReadString()
				if err != nil {
					return err
				}
				c.PathInSchema[i] = v
			}
			if err := p.ReadListEnd(); err != nil {
				return err
			}
		case 4:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			c.Codec = CompressionCodec(v)
		case 5:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			c.NumValues = v
		case 6:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			c.TotalUncompressedSize = v
		case 7:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			c.TotalCompressedSize = v
		case 9:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			c.DataPageOffset = v
		case 11:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			c.DictionaryPageOffset = &v
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

// ColumnChunk locates one column's pages within the row group. FileOffset is
// set to MetaData.DataPageOffset, not the dictionary page offset: a
// deliberate simplification.
type ColumnChunk struct {
	FileOffset int64
	MetaData   *ColumnMetaData
}

func (c *ColumnChunk) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("ColumnChunk"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("file_offset", thrift.I64, 2); err != nil {
		return err
	}
	if err := p.WriteI64(c.FileOffset); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if c.MetaData != nil {
		if err := p.WriteFieldBegin("meta_data", thrift.STRUCT, 3); err != nil {
			return err
		}
		if err := c.MetaData.Write(p); err != nil {
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

func (c *ColumnChunk) Read(p thrift.TProtocol) error {
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
		case 2:
			v, err := p.ReadI64()
			if err != nil {
				return err
			}
			c.FileOffset = v
		case 3:
			md := &ColumnMetaData{}
			if err := md.Read(p); err != nil {
				return err
			}
			c.MetaData = md
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
