package i18n

// 消息 ID，按组件分组。取值即为回退文本的键。

// 词法
const (
	ErrUnexpectedChar      = "lexer.unexpected_char"
	ErrUnterminatedString  = "lexer.unterminated_string"
	ErrUnterminatedComment = "lexer.unterminated_comment"
	ErrUnterminatedMeta    = "lexer.unterminated_meta"
	ErrExpectedVarName     = "lexer.expected_var_name"
	ErrInvalidNumber       = "lexer.invalid_number"
)

// 语法
const (
	ErrExpected        = "syntax.expected"
	ErrUnexpectedToken = "syntax.unexpected"
	ErrTextInClass     = "syntax.text_in_class"
)

// 类型
const (
	ErrUndefinedClass       = "type.undefined_class"
	ErrUndefinedClassInUnit = "type.undefined_class_in_progress"
	ErrTypeSyntax           = "type.syntax"
	NoticeTypeCase          = "type.case"
	ErrMultipleTypes        = "type.multiple"
	ErrNotGeneric           = "type.not_generic"
	ErrGenericArity         = "type.generic_arity"
	ErrGenericBound         = "type.generic_bound"
	ErrGenericParamArgs     = "type.param_args"
	ErrInvalidCast          = "type.invalid_cast"
	NoticeNameCase          = "type.name_case"
	ErrPrivateClass         = "type.private_class"
	ErrTypeMismatch         = "type.mismatch"
	ErrMissingType          = "type.missing"
	ErrVoidNotAllowed       = "type.void"
)

// 类与接口
const (
	ErrClassRedeclared        = "class.redeclared"
	ErrExtendsInterface       = "class.extends_interface"
	ErrExtendsFinal           = "class.extends_final"
	ErrExtendsIncomplete      = "class.extends_incomplete"
	ErrExtendsSelf            = "class.extends_self"
	ErrNotAnInterface         = "class.not_interface"
	NoticeRedundantInterface  = "class.redundant_interface"
	ErrAbstractFinal          = "class.abstract_final"
	ErrPrototypeMismatch      = "class.prototype_mismatch"
	ErrMissingImplementation  = "class.missing_implementation"
	ErrForwardNotImplemented  = "class.forward_method"
	ErrForwardClassUnresolved = "class.forward_unresolved"
	ErrInterfaceProperty      = "class.interface_property"
	ErrInterfaceVisibility    = "class.interface_visibility"
	ErrInterfaceBody          = "class.interface_body"
	ErrInterfaceModifier      = "class.interface_modifier"
	ErrUncheckedNotException  = "class.unchecked"
)

// 原型不匹配的原因
const (
	ReasonProtoKind       = "proto.kind"
	ReasonProtoFinal      = "proto.final"
	ReasonProtoAbstract   = "proto.abstract"
	ReasonProtoException  = "proto.exception"
	ReasonProtoExtends    = "proto.extends"
	ReasonProtoImplements = "proto.implements"
	ReasonProtoParams     = "proto.params"
	ReasonProtoMethod     = "proto.method"
	ReasonProtoModifiers  = "proto.modifiers"
)

// 成员
const (
	ErrMemberRedeclared     = "member.redeclared"
	ErrOverrideFinal        = "member.override_final"
	ErrOverrideVisibility   = "member.override_visibility"
	ErrOverrideStatic       = "member.override_static"
	ErrOverrideSignature    = "member.override_signature"
	ErrPropertyType         = "member.property_type"
	ErrConstantOverride     = "member.constant_override"
	ErrAbstractInConcrete   = "member.abstract_in_concrete"
	ErrAbstractBody         = "member.abstract_body"
	ErrMissingBody          = "member.missing_body"
	ErrAbstractPrivate      = "member.abstract_private"
	ErrAbstractFinalMethod  = "member.abstract_final"
	ErrModifierRepeated     = "member.modifier_repeated"
	ErrModifierInvalid      = "member.modifier_invalid"
	NoticeMissingVisibility = "member.missing_visibility"
	ErrUndefinedMember      = "member.undefined"
)

// 签名与参数
const (
	ErrArgRedeclared          = "sig.arg_redeclared"
	ErrMandatoryAfterOptional = "sig.mandatory_after_optional"
	ErrVariadicNotLast        = "sig.variadic_not_last"
	ErrVariadicDefault        = "sig.variadic_default"
	ErrDocConflict            = "sig.doc_conflict"
	ErrFunctionRedeclared     = "sig.function_redeclared"
	ErrForwardFuncUnresolved  = "sig.forward_unresolved"
	ErrUnknownErrorName       = "sig.unknown_error"
	ErrNotException           = "sig.not_exception"
)

// 签名兼容性原因
const (
	ReasonByRefReturn     = "compat.byref_return"
	ReasonByRefReturnType = "compat.byref_return_type"
	ReasonVoidReturn      = "compat.void_return"
	ReasonReturnType      = "compat.return_type"
	ReasonMoreArgs        = "compat.more_args"
	ReasonNoMoreArgs      = "compat.no_more_args"
	ReasonMandatory       = "compat.mandatory"
	ReasonArgCount        = "compat.arg_count"
	ReasonArg             = "compat.arg"
	ReasonArgByRef        = "compat.arg_byref"
	ReasonArgVariadic     = "compat.arg_variadic"
	ReasonArgType         = "compat.arg_type"
	ReasonVariadicMissing = "compat.variadic_missing"
	ReasonVariadic        = "compat.variadic"
	ReasonErrors          = "compat.errors"
	ReasonExceptions      = "compat.exceptions"
)

// 泛型参数声明
const (
	ErrTypeParamRedeclared = "generic.param_redeclared"
	ErrTypeParamBound      = "generic.bound_not_interface"
	ErrTypeParamBoundKind  = "generic.bound_invalid"
	NoticeTypeParamShadows = "generic.param_shadows"
)

// 编译指令、declare、use
const (
	ErrPragmaUnknown        = "pragma.unknown"
	ErrPragmaArgs           = "pragma.args"
	ErrSuspendNotAllowed    = "pragma.suspend"
	ErrErrorThrowsTwice     = "pragma.error_throws_twice"
	ErrErrorThrowsTooLate   = "pragma.error_throws_late"
	ErrErrorThrowsChecked   = "pragma.error_throws_checked"
	ErrAutoloadTwice        = "pragma.autoload_twice"
	ErrAutoloadSignature    = "pragma.autoload_signature"
	ErrAutoloadUndefined    = "pragma.autoload_undefined"
	ErrDeclareUnknown       = "declare.unknown"
	ErrDeclareValue         = "declare.value"
	ErrStrictTypesFirst     = "declare.strict_types_first"
	ErrUseAliasRedeclared   = "use.alias_redeclared"
	NoticeUseUnused         = "use.unused"
	ErrNamespaceNotFirst    = "namespace.not_first"
	ErrConstantRedeclared   = "const.redeclared"
	ErrUndefinedConstant    = "const.undefined"
	ErrConstantNotStatic    = "const.not_static"
	NoticeTrailingWhitespace = "text.trailing_whitespace"
)

// 源单元
const (
	ErrReadUnit          = "unit.read"
	ErrRecursionLimit    = "unit.recursion_limit"
	ErrRequireNotStatic  = "unit.require_not_static"
	ErrRequireNotFound   = "unit.require_not_found"
)

// 未使用报告
const (
	NoticeUnusedClass    = "report.unused_class"
	NoticeUnusedConstant = "report.unused_constant"
	NoticeUnusedProperty = "report.unused_property"
	NoticeUnusedMethod   = "report.unused_method"
	NoticeUnusedUnit     = "report.unused_unit"
)

// 修复建议
const (
	HintDidYouMean = "hint.did_you_mean"

	// 词语
	WordEOF  = "word.eof"
	WordText = "word.text"
)

// 汇总
const (
	MsgSummary     = "summary.counts"
	MsgSummaryNone = "summary.none"
)
