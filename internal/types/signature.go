package types

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/i18n"
)

// Signature 函数或方法的签名
type Signature struct {
	Return      Type
	ByRefReturn bool
	Args        []*FormalArgument // 不含可变参数
	Variadic    *FormalArgument   // 末尾的可变参数，可为 nil
	Mandatory   int               // 必选参数个数
	MoreArgs    bool              // 接受任意多个额外参数（args 标记）
	Errors      ErrorSet          // 可能触发的错误
	Exceptions  ExceptionSet      // 可能抛出的异常
}

// NewSignature 创建返回 void 的空签名
func NewSignature() *Signature {
	return &Signature{Return: Void}
}

// AddArg 追加参数并维护必选参数个数；调用方负责检查顺序
func (s *Signature) AddArg(a *FormalArgument) {
	if a.Variadic {
		s.Variadic = a
		return
	}
	s.Args = append(s.Args, a)
	if a.Mandatory {
		s.Mandatory++
	}
}

// Arg 按名称查找参数（包括可变参数）
func (s *Signature) Arg(name string) *FormalArgument {
	for _, a := range s.Args {
		if a.Name == name {
			return a
		}
	}
	if s.Variadic != nil && s.Variadic.Name == name {
		return s.Variadic
	}
	return nil
}

// ConvertErrors 将触发的错误转换为抛出的异常 exc
func (s *Signature) ConvertErrors(exc *ClassType) {
	if s.Errors == 0 || exc == nil {
		return
	}
	s.Exceptions.Add(exc)
	s.Errors = 0
}

// CallCompatibleWithReason 判断 s 能否作为 other 的重写或实现
//
// 规则按顺序检查，第一个失败的规则给出原因：
//  1. 按引用返回的标志一致；按引用返回时返回类型完全相同，否则返回类型协变，void 只与 void 兼容
//  2. 接受额外参数的标志一致
//  3. 必选参数不多于基方法，参数总数不少于基方法
//  4. 相同位置的参数逐一兼容
//  5. 基方法有可变参数时，重写方也必须有且元素类型兼容
//  6. 触发的错误是基方法的子集
//  7. 抛出的受检异常被基方法覆盖
//
// 兼容时返回空串。
func (s *Signature) CallCompatibleWithReason(other *Signature) string {
	// 1
	if s.ByRefReturn != other.ByRefReturn {
		return i18n.T(i18n.ReasonByRefReturn)
	}
	if r := s.returnCompatible(other); r != "" {
		return r
	}

	// 2
	if s.MoreArgs && !other.MoreArgs {
		return i18n.T(i18n.ReasonMoreArgs)
	}
	if !s.MoreArgs && other.MoreArgs {
		return i18n.T(i18n.ReasonNoMoreArgs)
	}

	// 3
	if s.Mandatory > other.Mandatory {
		return i18n.T(i18n.ReasonMandatory, s.Mandatory, other.Mandatory)
	}
	if len(s.Args) < len(other.Args) {
		return i18n.T(i18n.ReasonArgCount, len(s.Args), len(other.Args))
	}

	// 4
	for i, oa := range other.Args {
		if r := s.Args[i].CallCompatibleWithReason(oa); r != "" {
			return i18n.T(i18n.ReasonArg, i+1, r)
		}
	}

	// 5
	if other.Variadic != nil {
		if s.Variadic == nil {
			return i18n.T(i18n.ReasonVariadicMissing)
		}
		if r := s.Variadic.CallCompatibleWithReason(other.Variadic); r != "" {
			return i18n.T(i18n.ReasonVariadic, r)
		}
	}

	// 6
	if extra := s.Errors &^ other.Errors; extra != 0 {
		return i18n.T(i18n.ReasonErrors, extra.String())
	}

	// 7
	if extra := s.Exceptions.NotCoveredBy(&other.Exceptions); len(extra) > 0 {
		return i18n.T(i18n.ReasonExceptions, joinClasses(extra))
	}
	return ""
}

func (s *Signature) returnCompatible(other *Signature) string {
	if IsUnknown(s.Return) || IsUnknown(other.Return) {
		return ""
	}
	if s.ByRefReturn {
		if !s.Return.Equals(other.Return) {
			return i18n.T(i18n.ReasonByRefReturnType, other.Return, s.Return)
		}
		return ""
	}
	if s.Return == Void || other.Return == Void {
		if s.Return != other.Return {
			return i18n.T(i18n.ReasonVoidReturn, s.Return, other.Return)
		}
		return ""
	}
	if !s.Return.AssignableTo(other.Return) {
		return i18n.T(i18n.ReasonReturnType, s.Return, other.Return)
	}
	return ""
}

// CallCompatible 是否兼容
func (s *Signature) CallCompatible(other *Signature) bool {
	return s.CallCompatibleWithReason(other) == ""
}

// String 返回签名的原型写法，如 "int(string $a, float $b =)"
func (s *Signature) String() string {
	var sb strings.Builder
	if s.ByRefReturn {
		sb.WriteByte('&')
	}
	sb.WriteString(s.Return.String())
	sb.WriteByte('(')
	n := 0
	for _, a := range s.Args {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
		n++
	}
	if s.Variadic != nil {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.Variadic.String())
		n++
	}
	if s.MoreArgs {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("args")
	}
	sb.WriteByte(')')
	if s.Errors != 0 {
		sb.WriteString(" triggers " + s.Errors.String())
	}
	if s.Exceptions.Len() > 0 {
		sb.WriteString(" throws " + s.Exceptions.String())
	}
	return sb.String()
}
