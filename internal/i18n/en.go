package i18n

var messagesEN = map[string]string{
	// 词法
	ErrUnexpectedChar:      "unexpected character '%c'",
	ErrUnterminatedString:  "unterminated string",
	ErrUnterminatedComment: "unterminated comment",
	ErrUnterminatedMeta:    "unterminated meta-code, missing '.*/'",
	ErrExpectedVarName:     "expected variable name after '$'",
	ErrInvalidNumber:       "invalid number literal '%s'",

	// 语法
	ErrExpected:        "expected %s, found %s",
	ErrUnexpectedToken: "unexpected %s",
	ErrTextInClass:     "text block not allowed inside the declaration of %s",

	// 类型
	ErrUndefinedClass:       "undefined class %s",
	ErrUndefinedClassInUnit: "undefined class %s: source unit %s is still being parsed, add a forward declaration",
	ErrTypeSyntax:           "invalid type %q: %s",
	NoticeTypeCase:          "type %s should be spelled %s",
	ErrMultipleTypes:        "multiple types %s are not supported, using %s",
	ErrNotGeneric:           "class %s is not generic",
	ErrGenericArity:         "class %s expects %d type parameters, %d given",
	ErrGenericBound:         "type argument %s does not satisfy bound %s of parameter %s",
	ErrGenericParamArgs:     "type parameter %s cannot take type arguments",
	ErrInvalidCast:          "invalid cast target %s",
	NoticeNameCase:          "%s referenced as %s",
	ErrPrivateClass:         "class %s is private to %s",
	ErrTypeMismatch:         "%s: cannot assign %s to %s",
	ErrMissingType:          "missing type for %s",
	ErrVoidNotAllowed:       "void type not allowed for %s",

	// 类与接口
	ErrClassRedeclared:        "class %s already declared in %s",
	ErrExtendsInterface:       "class %s cannot extend interface %s",
	ErrExtendsFinal:           "class %s cannot extend final class %s",
	ErrExtendsIncomplete:      "%s cannot inherit from %s: its declaration is not complete",
	ErrExtendsSelf:            "%s cannot inherit from itself",
	ErrNotAnInterface:         "%s is not an interface",
	NoticeRedundantInterface:  "interface %s is already implemented through %s",
	ErrAbstractFinal:          "class %s cannot be both abstract and final",
	ErrPrototypeMismatch:      "declaration of %s does not match its forward declaration in %s: %s",
	ErrMissingImplementation:  "class %s must be declared abstract or implement %s",
	ErrForwardNotImplemented:  "method %s declared forward but never implemented",
	ErrForwardClassUnresolved: "%s declared forward in %s but never declared",
	ErrInterfaceProperty:      "interface %s cannot declare property %s",
	ErrInterfaceVisibility:    "interface member %s must be public",
	ErrInterfaceBody:          "interface method %s cannot have a body",
	ErrInterfaceModifier:      "modifier %s not allowed for interface member %s",
	ErrUncheckedNotException:  "class %s is declared unchecked but is not an exception",

	ReasonProtoKind:       "one is a class and the other an interface",
	ReasonProtoFinal:      "finality differs",
	ReasonProtoAbstract:   "abstractness differs",
	ReasonProtoException:  "exception kind differs",
	ReasonProtoExtends:    "extends %s, not a subclass of %s",
	ReasonProtoImplements: "does not implement %s",
	ReasonProtoParams:     "type parameters differ",
	ReasonProtoMethod:     "method %s: %s",
	ReasonProtoModifiers:  "modifiers differ",

	// 成员
	ErrMemberRedeclared:     "%s already declared in %s",
	ErrOverrideFinal:        "%s cannot override final method %s",
	ErrOverrideVisibility:   "%s cannot reduce visibility of %s from %s to %s",
	ErrOverrideStatic:       "%s and %s must both be static or both be non-static",
	ErrOverrideSignature:    "%s is not compatible with %s: %s",
	ErrPropertyType:         "%s redeclares %s with type %s instead of %s",
	ErrConstantOverride:     "%s cannot override interface constant %s",
	ErrAbstractInConcrete:   "abstract method %s in non-abstract class %s",
	ErrAbstractBody:         "abstract method %s cannot have a body",
	ErrMissingBody:          "method %s requires a body",
	ErrAbstractPrivate:      "abstract method %s cannot be private",
	ErrAbstractFinalMethod:  "method %s cannot be both abstract and final",
	ErrModifierRepeated:     "repeated modifier %s",
	ErrModifierInvalid:      "modifier %s not allowed here",
	NoticeMissingVisibility: "missing visibility modifier for %s, assuming public",
	ErrUndefinedMember:      "undefined %s",

	// 签名与参数
	ErrArgRedeclared:          "argument %s already declared",
	ErrMandatoryAfterOptional: "mandatory argument %s follows an optional argument",
	ErrVariadicNotLast:        "variadic argument %s must be the last one",
	ErrVariadicDefault:        "variadic argument %s cannot have a default value",
	ErrDocConflict:            "%s declared as %s but documented as %s",
	ErrFunctionRedeclared:     "function %s already declared in %s",
	ErrForwardFuncUnresolved:  "function %s declared forward in %s but never declared",
	ErrUnknownErrorName:       "unknown error level %s",
	ErrNotException:           "%s is not an exception class",

	ReasonByRefReturn:     "one returns by reference and the other does not",
	ReasonByRefReturnType: "returning by reference requires the same type %s, found %s",
	ReasonVoidReturn:      "return type %s is not compatible with %s",
	ReasonReturnType:      "return type %s is not assignable to %s",
	ReasonMoreArgs:        "accepts unlimited extra arguments but the overridden one does not",
	ReasonNoMoreArgs:      "the overridden one accepts unlimited extra arguments but this one does not",
	ReasonMandatory:       "requires %d mandatory arguments, the overridden one requires %d",
	ReasonArgCount:        "declares %d arguments, the overridden one declares %d",
	ReasonArg:             "argument #%d: %s",
	ReasonArgByRef:        "by-reference mode differs",
	ReasonArgVariadic:     "variadic mode differs",
	ReasonArgType:         "type %s is not compatible with %s",
	ReasonVariadicMissing: "the overridden one has a variadic argument, this one does not",
	ReasonVariadic:        "variadic argument: %s",
	ReasonErrors:          "triggers %s not triggered by the overridden one",
	ReasonExceptions:      "throws %s not thrown by the overridden one",

	// 泛型参数声明
	ErrTypeParamRedeclared: "type parameter %s already declared",
	ErrTypeParamBound:      "bound %s of type parameter %s must be an interface",
	ErrTypeParamBoundKind:  "bound %s of type parameter %s must be a class or interface",
	NoticeTypeParamShadows: "type parameter %s hides class %s",

	// 编译指令、declare、use
	ErrPragmaUnknown:         "unknown pragma %s",
	ErrPragmaArgs:            "pragma %s expects %d arguments, %d given",
	ErrSuspendNotAllowed:     "pragma suspend not allowed here",
	ErrErrorThrowsTwice:      "error_throws_exception already set in %s",
	ErrErrorThrowsTooLate:    "error_throws_exception must be set before any signature that triggers errors (first one in %s)",
	ErrErrorThrowsChecked:    "%s is not a checked exception",
	ErrAutoloadTwice:         "autoload function already registered in %s",
	ErrAutoloadSignature:     "autoload function %s must take exactly one mandatory string argument",
	ErrAutoloadUndefined:     "autoload function %s is not declared",
	ErrDeclareUnknown:        "unknown directive %s",
	ErrDeclareValue:          "invalid value for directive %s",
	ErrStrictTypesFirst:      "strict_types declaration must be the first statement",
	ErrUseAliasRedeclared:    "alias %s already used for %s",
	NoticeUseUnused:          "unused use %s",
	ErrNamespaceNotFirst:     "namespace declaration must precede any other code",
	ErrConstantRedeclared:    "constant %s already declared in %s",
	ErrUndefinedConstant:     "undefined constant %s",
	ErrConstantNotStatic:     "expression is not static",
	NoticeTrailingWhitespace: "whitespace after the closing tag at end of file",

	// 源单元
	ErrReadUnit:         "cannot read %s: %s",
	ErrRecursionLimit:   "too many nested source units loading %s (limit %d)",
	ErrRequireNotStatic: "cannot resolve the path of the required file",
	ErrRequireNotFound:  "required file %s not found",

	// 未使用报告
	NoticeUnusedClass:    "unused private class %s",
	NoticeUnusedConstant: "unused private constant %s",
	NoticeUnusedProperty: "unused private property %s",
	NoticeUnusedMethod:   "unused private method %s",
	NoticeUnusedUnit:     "%s requires %s but uses nothing from it",

	// 修复建议
	HintDidYouMean: "did you mean %s?",

	// 词语
	WordEOF:  "end of file",
	WordText: "text block",

	// 汇总
	MsgSummary:     "%s lines in %s source units: %d fatal, %d errors, %d warnings, %d notices",
	MsgSummaryNone: "%s lines in %s source units: no problems found",
}
