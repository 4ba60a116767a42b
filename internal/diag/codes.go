// Package diag 提供静态分析器的诊断系统：级别、错误码、收集与输出
package diag

import "github.com/rvtraveller/phplint/internal/i18n"

// ============================================================================
// 诊断级别
// ============================================================================

// Level 诊断级别
type Level int

const (
	LevelFatal   Level = iota // 致命：中止当前源单元
	LevelError                // 错误：记录后继续解析
	LevelWarning              // 警告
	LevelNotice               // 提示：风格层面，可关闭
	levelCount
)

func (l Level) String() string {
	switch l {
	case LevelFatal:
		return "fatal"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// ============================================================================
// 错误码
// ============================================================================
//
// E 开头为致命错误或错误，W 为警告，N 为提示。
// 百位表示组件：00 语法，01 类型，02 类与接口，03 成员，04 签名，
// 05 泛型，06 编译指令/declare/use/常量，07 源单元，08 未使用报告。
//
// ============================================================================

const (
	// E0001-E0099: 语法与词法（致命）
	E0001 = "E0001" // 期望的 token
	E0002 = "E0002" // 意外的 token
	E0003 = "E0003" // 词法错误
	E0004 = "E0004" // 类声明中的文本块
	E0005 = "E0005" // 无法读取源单元

	// E0100-E0199: 类型
	E0100 = "E0100" // 未定义的类
	E0101 = "E0101" // 未定义的类（所在单元仍在解析）
	E0102 = "E0102" // 类型表达式语法错误
	E0104 = "E0104" // 非泛型类带类型实参
	E0105 = "E0105" // 类型参数个数不符
	E0106 = "E0106" // 类型实参不满足约束
	E0107 = "E0107" // 类型参数带类型实参
	E0108 = "E0108" // 无效的转换目标
	E0109 = "E0109" // 私有类
	E0110 = "E0110" // 类型不匹配
	E0111 = "E0111" // 缺少类型
	E0112 = "E0112" // 不允许 void

	// E0200-E0299: 类与接口
	E0200 = "E0200" // 类重复声明
	E0201 = "E0201" // 继承接口
	E0202 = "E0202" // 继承 final 类
	E0203 = "E0203" // 继承未完成的类
	E0204 = "E0204" // 继承自身
	E0205 = "E0205" // 不是接口
	E0206 = "E0206" // abstract 与 final 冲突
	E0207 = "E0207" // 与前向声明不一致
	E0208 = "E0208" // 未实现抽象方法
	E0209 = "E0209" // 前向方法未实现
	E0210 = "E0210" // 前向类未声明
	E0211 = "E0211" // 接口属性
	E0212 = "E0212" // 接口成员可见性
	E0213 = "E0213" // 接口方法体
	E0214 = "E0214" // 接口成员修饰符
	E0215 = "E0215" // unchecked 非异常类

	// E0300-E0399: 成员
	E0300 = "E0300" // 成员重复声明
	E0301 = "E0301" // 重写 final 方法
	E0302 = "E0302" // 缩小可见性
	E0303 = "E0303" // static 不一致
	E0304 = "E0304" // 签名不兼容
	E0305 = "E0305" // 属性类型不一致
	E0306 = "E0306" // 重写接口常量
	E0307 = "E0307" // 非抽象类中的抽象方法
	E0308 = "E0308" // 抽象方法有方法体
	E0309 = "E0309" // 缺少方法体
	E0310 = "E0310" // private 抽象方法
	E0311 = "E0311" // abstract 与 final 方法
	E0312 = "E0312" // 重复修饰符
	E0313 = "E0313" // 无效修饰符
	E0314 = "E0314" // 未定义的成员

	// E0400-E0499: 签名与参数
	E0400 = "E0400" // 参数重复
	E0401 = "E0401" // 必选参数在可选参数之后
	E0402 = "E0402" // 可变参数不在最后
	E0403 = "E0403" // 可变参数带默认值
	E0404 = "E0404" // 与文档注释冲突
	E0405 = "E0405" // 函数重复声明
	E0406 = "E0406" // 前向函数未声明
	E0407 = "E0407" // 未知错误级别
	E0408 = "E0408" // 不是异常类

	// E0500-E0599: 泛型参数声明
	E0500 = "E0500" // 类型参数重复
	E0501 = "E0501" // 后续约束必须是接口
	E0502 = "E0502" // 约束必须是类或接口

	// E0600-E0699: 编译指令、declare、use、常量
	E0600 = "E0600" // 未知编译指令
	E0601 = "E0601" // 编译指令参数个数
	E0602 = "E0602" // 不允许 suspend
	E0603 = "E0603" // error_throws_exception 重复
	E0604 = "E0604" // error_throws_exception 过晚
	E0605 = "E0605" // 不是受检异常
	E0606 = "E0606" // autoload 重复
	E0607 = "E0607" // autoload 函数签名
	E0608 = "E0608" // autoload 函数未声明
	E0610 = "E0610" // 未知 declare 指令
	E0611 = "E0611" // declare 值无效
	E0612 = "E0612" // strict_types 不是第一条语句
	E0620 = "E0620" // use 别名重复
	E0621 = "E0621" // namespace 不在最前
	E0630 = "E0630" // 常量重复声明
	E0631 = "E0631" // 未定义的常量
	E0632 = "E0632" // 非静态表达式

	// E0700-E0799: 源单元
	E0700 = "E0700" // 嵌套过深
	E0701 = "E0701" // require 路径无法解析
	E0702 = "E0702" // require 文件不存在

	// 警告
	W0100 = "W0100" // 多重类型

	// 提示
	N0100 = "N0100" // 类型名大小写
	N0101 = "N0101" // 名称大小写
	N0200 = "N0200" // 冗余接口
	N0300 = "N0300" // 缺少可见性
	N0500 = "N0500" // 类型参数遮蔽类
	N0620 = "N0620" // 未使用的 use
	N0640 = "N0640" // 结束标签后的空白
	N0800 = "N0800" // 未使用的私有类
	N0801 = "N0801" // 未使用的私有常量
	N0802 = "N0802" // 未使用的私有属性
	N0803 = "N0803" // 未使用的私有方法
	N0804 = "N0804" // 未使用的源单元
)

// ============================================================================
// 错误码信息
// ============================================================================

// ErrorInfo 错误码信息
type ErrorInfo struct {
	Code      string // 错误码
	Level     Level  // 级别
	MessageID string // i18n 消息 ID，为空时第一个参数即为消息
	Category  string // 分类
}

var codeTable = map[string]ErrorInfo{
	E0001: {E0001, LevelFatal, i18n.ErrExpected, "syntax"},
	E0002: {E0002, LevelFatal, i18n.ErrUnexpectedToken, "syntax"},
	E0003: {E0003, LevelFatal, "", "syntax"},
	E0004: {E0004, LevelFatal, i18n.ErrTextInClass, "syntax"},
	E0005: {E0005, LevelFatal, i18n.ErrReadUnit, "unit"},

	E0100: {E0100, LevelError, i18n.ErrUndefinedClass, "type"},
	E0101: {E0101, LevelError, i18n.ErrUndefinedClassInUnit, "type"},
	E0102: {E0102, LevelError, i18n.ErrTypeSyntax, "type"},
	E0104: {E0104, LevelError, i18n.ErrNotGeneric, "type"},
	E0105: {E0105, LevelError, i18n.ErrGenericArity, "type"},
	E0106: {E0106, LevelError, i18n.ErrGenericBound, "type"},
	E0107: {E0107, LevelError, i18n.ErrGenericParamArgs, "type"},
	E0108: {E0108, LevelError, i18n.ErrInvalidCast, "type"},
	E0109: {E0109, LevelError, i18n.ErrPrivateClass, "type"},
	E0110: {E0110, LevelError, i18n.ErrTypeMismatch, "type"},
	E0111: {E0111, LevelError, i18n.ErrMissingType, "type"},
	E0112: {E0112, LevelError, i18n.ErrVoidNotAllowed, "type"},

	E0200: {E0200, LevelError, i18n.ErrClassRedeclared, "class"},
	E0201: {E0201, LevelError, i18n.ErrExtendsInterface, "class"},
	E0202: {E0202, LevelError, i18n.ErrExtendsFinal, "class"},
	E0203: {E0203, LevelError, i18n.ErrExtendsIncomplete, "class"},
	E0204: {E0204, LevelError, i18n.ErrExtendsSelf, "class"},
	E0205: {E0205, LevelError, i18n.ErrNotAnInterface, "class"},
	E0206: {E0206, LevelError, i18n.ErrAbstractFinal, "class"},
	E0207: {E0207, LevelError, i18n.ErrPrototypeMismatch, "class"},
	E0208: {E0208, LevelError, i18n.ErrMissingImplementation, "class"},
	E0209: {E0209, LevelError, i18n.ErrForwardNotImplemented, "class"},
	E0210: {E0210, LevelError, i18n.ErrForwardClassUnresolved, "class"},
	E0211: {E0211, LevelError, i18n.ErrInterfaceProperty, "class"},
	E0212: {E0212, LevelError, i18n.ErrInterfaceVisibility, "class"},
	E0213: {E0213, LevelError, i18n.ErrInterfaceBody, "class"},
	E0214: {E0214, LevelError, i18n.ErrInterfaceModifier, "class"},
	E0215: {E0215, LevelError, i18n.ErrUncheckedNotException, "class"},

	E0300: {E0300, LevelError, i18n.ErrMemberRedeclared, "member"},
	E0301: {E0301, LevelError, i18n.ErrOverrideFinal, "member"},
	E0302: {E0302, LevelError, i18n.ErrOverrideVisibility, "member"},
	E0303: {E0303, LevelError, i18n.ErrOverrideStatic, "member"},
	E0304: {E0304, LevelError, i18n.ErrOverrideSignature, "member"},
	E0305: {E0305, LevelError, i18n.ErrPropertyType, "member"},
	E0306: {E0306, LevelError, i18n.ErrConstantOverride, "member"},
	E0307: {E0307, LevelError, i18n.ErrAbstractInConcrete, "member"},
	E0308: {E0308, LevelError, i18n.ErrAbstractBody, "member"},
	E0309: {E0309, LevelError, i18n.ErrMissingBody, "member"},
	E0310: {E0310, LevelError, i18n.ErrAbstractPrivate, "member"},
	E0311: {E0311, LevelError, i18n.ErrAbstractFinalMethod, "member"},
	E0312: {E0312, LevelError, i18n.ErrModifierRepeated, "member"},
	E0313: {E0313, LevelError, i18n.ErrModifierInvalid, "member"},
	E0314: {E0314, LevelError, i18n.ErrUndefinedMember, "member"},

	E0400: {E0400, LevelError, i18n.ErrArgRedeclared, "signature"},
	E0401: {E0401, LevelError, i18n.ErrMandatoryAfterOptional, "signature"},
	E0402: {E0402, LevelError, i18n.ErrVariadicNotLast, "signature"},
	E0403: {E0403, LevelError, i18n.ErrVariadicDefault, "signature"},
	E0404: {E0404, LevelError, i18n.ErrDocConflict, "signature"},
	E0405: {E0405, LevelError, i18n.ErrFunctionRedeclared, "signature"},
	E0406: {E0406, LevelError, i18n.ErrForwardFuncUnresolved, "signature"},
	E0407: {E0407, LevelError, i18n.ErrUnknownErrorName, "signature"},
	E0408: {E0408, LevelError, i18n.ErrNotException, "signature"},

	E0500: {E0500, LevelError, i18n.ErrTypeParamRedeclared, "generic"},
	E0501: {E0501, LevelError, i18n.ErrTypeParamBound, "generic"},
	E0502: {E0502, LevelError, i18n.ErrTypeParamBoundKind, "generic"},

	E0600: {E0600, LevelError, i18n.ErrPragmaUnknown, "pragma"},
	E0601: {E0601, LevelError, i18n.ErrPragmaArgs, "pragma"},
	E0602: {E0602, LevelError, i18n.ErrSuspendNotAllowed, "pragma"},
	E0603: {E0603, LevelError, i18n.ErrErrorThrowsTwice, "pragma"},
	E0604: {E0604, LevelError, i18n.ErrErrorThrowsTooLate, "pragma"},
	E0605: {E0605, LevelError, i18n.ErrErrorThrowsChecked, "pragma"},
	E0606: {E0606, LevelError, i18n.ErrAutoloadTwice, "pragma"},
	E0607: {E0607, LevelError, i18n.ErrAutoloadSignature, "pragma"},
	E0608: {E0608, LevelError, i18n.ErrAutoloadUndefined, "pragma"},
	E0610: {E0610, LevelError, i18n.ErrDeclareUnknown, "declare"},
	E0611: {E0611, LevelError, i18n.ErrDeclareValue, "declare"},
	E0612: {E0612, LevelError, i18n.ErrStrictTypesFirst, "declare"},
	E0620: {E0620, LevelError, i18n.ErrUseAliasRedeclared, "use"},
	E0621: {E0621, LevelError, i18n.ErrNamespaceNotFirst, "use"},
	E0630: {E0630, LevelError, i18n.ErrConstantRedeclared, "constant"},
	E0631: {E0631, LevelError, i18n.ErrUndefinedConstant, "constant"},
	E0632: {E0632, LevelError, i18n.ErrConstantNotStatic, "constant"},

	E0700: {E0700, LevelError, i18n.ErrRecursionLimit, "unit"},
	E0701: {E0701, LevelError, i18n.ErrRequireNotStatic, "unit"},
	E0702: {E0702, LevelError, i18n.ErrRequireNotFound, "unit"},

	W0100: {W0100, LevelWarning, i18n.ErrMultipleTypes, "type"},

	N0100: {N0100, LevelNotice, i18n.NoticeTypeCase, "type"},
	N0101: {N0101, LevelNotice, i18n.NoticeNameCase, "type"},
	N0200: {N0200, LevelNotice, i18n.NoticeRedundantInterface, "class"},
	N0300: {N0300, LevelNotice, i18n.NoticeMissingVisibility, "member"},
	N0500: {N0500, LevelNotice, i18n.NoticeTypeParamShadows, "generic"},
	N0620: {N0620, LevelNotice, i18n.NoticeUseUnused, "use"},
	N0640: {N0640, LevelNotice, i18n.NoticeTrailingWhitespace, "text"},
	N0800: {N0800, LevelNotice, i18n.NoticeUnusedClass, "report"},
	N0801: {N0801, LevelNotice, i18n.NoticeUnusedConstant, "report"},
	N0802: {N0802, LevelNotice, i18n.NoticeUnusedProperty, "report"},
	N0803: {N0803, LevelNotice, i18n.NoticeUnusedMethod, "report"},
	N0804: {N0804, LevelNotice, i18n.NoticeUnusedUnit, "report"},
}

// Info 返回错误码信息
func Info(code string) (ErrorInfo, bool) {
	info, ok := codeTable[code]
	return info, ok
}
