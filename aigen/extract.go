package aigen

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// ExtractJSON 返回文本中第一个括号平衡的 JSON 对象。字符串内的括号不计入深度。
// 该对象不是合法 JSON 时直接返回 ErrInvalidFormat，不再向后查找。
func ExtractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", fmt.Errorf("%w: 响应中没有 JSON 对象", ErrInvalidFormat)
	}
	end := balancedEnd(text, start)
	if end < 0 {
		return "", fmt.Errorf("%w: JSON 对象括号不平衡", ErrInvalidFormat)
	}
	candidate := text[start:end]
	if !json.Valid([]byte(candidate)) {
		return "", fmt.Errorf("%w: 第一个 JSON 对象无法解析", ErrInvalidFormat)
	}
	return candidate, nil
}

// balancedEnd 返回与 start 处 '{' 匹配的位置之后的下标，找不到时返回 -1。
func balancedEnd(text string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// ParseResponse 从模型输出中提取并解码设计。数值字段接受字符串形式。
func ParseResponse(content string) (*Response, error) {
	raw, err := ExtractJSON(content)
	if err != nil {
		return nil, err
	}
	var generic map[string]any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if _, ok := generic["design"]; !ok {
		return nil, fmt.Errorf("%w: 缺少 design 字段", ErrInvalidFormat)
	}

	var resp Response
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &resp,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	sanitize(&resp)
	return &resp, nil
}

// sanitize 去掉模型输出字符串中的 HTML 标记。
func sanitize(resp *Response) {
	resp.Design.Layout = plainText(resp.Design.Layout)
	for i := range resp.Design.Elements {
		props := resp.Design.Elements[i].Properties
		for k, v := range props {
			if s, ok := v.(string); ok {
				props[k] = plainText(s)
			}
		}
	}
}

func plainText(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}
	return html.UnescapeString(textPolicy.Sanitize(s))
}
