package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// Price はJSON上の柔軟な価格表現を保持するnull許容の数値です。
// 数値・数値文字列・空文字列・nullのいずれも受け付けます。
// 空文字列とnullはValue=nilになります。ゼロは記録された値として区別されます。
type Price struct {
	Value *float64
}

// UnmarshalJSON は number / "10.5" / "" / null を解釈します。
// 数値として解釈できない文字列はエラーです。
func (p *Price) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		p.Value = nil
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			p.Value = nil
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", s)
		}
		p.Value = &f
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	p.Value = &f
	return nil
}

// MarshalJSON は値が無い場合nullを、ある場合は素の数値を出力します。
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Value == nil {
		return jsonNull, nil
	}
	return json.Marshal(*p.Value)
}

// Volume はJSON上の柔軟な出来高表現を保持するnull許容の整数です。
// Priceの受け入れ形に加えて、桁区切りカンマ入り文字列（"1,234"）を
// 脱サニタイズしてから整数化します。
type Volume struct {
	Value *int64
}

// UnmarshalJSON は number / "1,200" / "" / null を解釈します。
func (v *Volume) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		v.Value = nil
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		if s == "" {
			v.Value = nil
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// "1200.0" のような小数表現はソースのエクスポート形式に現れる
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil {
				return fmt.Errorf("invalid volume value %q", s)
			}
			n = int64(f)
		}
		v.Value = &n
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	n := int64(f)
	v.Value = &n
	return nil
}

// MarshalJSON は値が無い場合nullを、ある場合は素の整数を出力します。
func (v Volume) MarshalJSON() ([]byte, error) {
	if v.Value == nil {
		return jsonNull, nil
	}
	return json.Marshal(*v.Value)
}
