package i18n

var messagesZH = map[string]string{
	// 词法
	ErrUnexpectedChar:      "意外字符 '%c'",
	ErrUnterminatedString:  "未闭合的字符串",
	ErrUnterminatedComment: "未闭合的注释",
	ErrUnterminatedMeta:    "未闭合的元代码，缺少 '.*/'",
	ErrExpectedVarName:     "'$' 后应为变量名",
	ErrInvalidNumber:       "无效的数字字面量 '%s'",

	// 语法
	ErrExpected:        "应为 %s，实际为 %s",
	ErrUnexpectedToken: "意外的 %s",
	ErrTextInClass:     "%s 的声明中不允许出现文本块",

	// 类型
	ErrUndefinedClass:       "未定义的类 %s",
	ErrUndefinedClassInUnit: "未定义的类 %s：源单元 %s 仍在解析中，请添加前向声明",
	ErrTypeSyntax:           "无效的类型 %q：%s",
	NoticeTypeCase:          "类型 %s 应写作 %s",
	ErrMultipleTypes:        "不支持多重类型 %s，使用 %s",
	ErrNotGeneric:           "类 %s 不是泛型类",
	ErrGenericArity:         "类 %s 需要 %d 个类型参数，实际给出 %d 个",
	ErrGenericBound:         "类型实参 %s 不满足参数 %[3]s 的约束 %[2]s",
	ErrGenericParamArgs:     "类型参数 %s 不能带类型实参",
	ErrInvalidCast:          "无效的转换目标 %s",
	NoticeNameCase:          "%s 被引用为 %s",
	ErrPrivateClass:         "类 %s 是 %s 的私有类",
	ErrTypeMismatch:         "%s：不能将 %s 赋值给 %s",
	ErrMissingType:          "%s 缺少类型",
	ErrVoidNotAllowed:       "%s 不允许使用 void 类型",

	// 类与接口
	ErrClassRedeclared:        "类 %s 已在 %s 中声明",
	ErrExtendsInterface:       "类 %s 不能继承接口 %s",
	ErrExtendsFinal:           "类 %s 不能继承 final 类 %s",
	ErrExtendsIncomplete:      "%s 不能继承 %s：其声明尚未完成",
	ErrExtendsSelf:            "%s 不能继承自身",
	ErrNotAnInterface:         "%s 不是接口",
	NoticeRedundantInterface:  "接口 %s 已通过 %s 实现",
	ErrAbstractFinal:          "类 %s 不能同时为 abstract 和 final",
	ErrPrototypeMismatch:      "%s 的声明与其在 %s 中的前向声明不一致：%s",
	ErrMissingImplementation:  "类 %s 必须声明为 abstract 或实现 %s",
	ErrForwardNotImplemented:  "方法 %s 被前向声明但从未实现",
	ErrForwardClassUnresolved: "%s 在 %s 中被前向声明但从未声明",
	ErrInterfaceProperty:      "接口 %s 不能声明属性 %s",
	ErrInterfaceVisibility:    "接口成员 %s 必须是 public",
	ErrInterfaceBody:          "接口方法 %s 不能有方法体",
	ErrInterfaceModifier:      "接口成员 %[2]s 不允许使用修饰符 %[1]s",
	ErrUncheckedNotException:  "类 %s 声明为 unchecked 但不是异常类",

	ReasonProtoKind:       "一个是类而另一个是接口",
	ReasonProtoFinal:      "final 属性不同",
	ReasonProtoAbstract:   "abstract 属性不同",
	ReasonProtoException:  "异常类别不同",
	ReasonProtoExtends:    "继承 %s，它不是 %s 的子类",
	ReasonProtoImplements: "未实现 %s",
	ReasonProtoParams:     "类型参数不同",
	ReasonProtoMethod:     "方法 %s：%s",
	ReasonProtoModifiers:  "修饰符不同",

	// 成员
	ErrMemberRedeclared:     "%s 已在 %s 中声明",
	ErrOverrideFinal:        "%s 不能重写 final 方法 %s",
	ErrOverrideVisibility:   "%s 不能将 %s 的可见性从 %s 缩小为 %s",
	ErrOverrideStatic:       "%s 与 %s 必须同为 static 或同为非 static",
	ErrOverrideSignature:    "%s 与 %s 不兼容：%s",
	ErrPropertyType:         "%[1]s 以类型 %[3]s 重新声明 %[2]s，原类型为 %[4]s",
	ErrConstantOverride:     "%s 不能重写接口常量 %s",
	ErrAbstractInConcrete:   "非抽象类 %[2]s 中的抽象方法 %[1]s",
	ErrAbstractBody:         "抽象方法 %s 不能有方法体",
	ErrMissingBody:          "方法 %s 需要方法体",
	ErrAbstractPrivate:      "抽象方法 %s 不能是 private",
	ErrAbstractFinalMethod:  "方法 %s 不能同时为 abstract 和 final",
	ErrModifierRepeated:     "重复的修饰符 %s",
	ErrModifierInvalid:      "此处不允许修饰符 %s",
	NoticeMissingVisibility: "%s 缺少可见性修饰符，按 public 处理",
	ErrUndefinedMember:      "未定义的 %s",

	// 签名与参数
	ErrArgRedeclared:          "参数 %s 已声明",
	ErrMandatoryAfterOptional: "必选参数 %s 位于可选参数之后",
	ErrVariadicNotLast:        "可变参数 %s 必须是最后一个参数",
	ErrVariadicDefault:        "可变参数 %s 不能有默认值",
	ErrDocConflict:            "%s 声明为 %s，但文档注释为 %s",
	ErrFunctionRedeclared:     "函数 %s 已在 %s 中声明",
	ErrForwardFuncUnresolved:  "函数 %s 在 %s 中被前向声明但从未声明",
	ErrUnknownErrorName:       "未知的错误级别 %s",
	ErrNotException:           "%s 不是异常类",

	ReasonByRefReturn:     "一个按引用返回而另一个不是",
	ReasonByRefReturnType: "按引用返回要求相同的类型 %s，实际为 %s",
	ReasonVoidReturn:      "返回类型 %s 与 %s 不兼容",
	ReasonReturnType:      "返回类型 %s 不能赋值给 %s",
	ReasonMoreArgs:        "接受任意多个额外参数，而被重写的方法不接受",
	ReasonNoMoreArgs:      "被重写的方法接受任意多个额外参数，而此方法不接受",
	ReasonMandatory:       "需要 %d 个必选参数，被重写的方法需要 %d 个",
	ReasonArgCount:        "声明了 %d 个参数，被重写的方法声明了 %d 个",
	ReasonArg:             "第 %d 个参数：%s",
	ReasonArgByRef:        "引用传递方式不同",
	ReasonArgVariadic:     "可变参数方式不同",
	ReasonArgType:         "类型 %s 与 %s 不兼容",
	ReasonVariadicMissing: "被重写的方法有可变参数，而此方法没有",
	ReasonVariadic:        "可变参数：%s",
	ReasonErrors:          "触发了被重写方法不触发的 %s",
	ReasonExceptions:      "抛出了被重写方法不抛出的 %s",

	// 泛型参数声明
	ErrTypeParamRedeclared: "类型参数 %s 已声明",
	ErrTypeParamBound:      "类型参数 %[2]s 的约束 %[1]s 必须是接口",
	ErrTypeParamBoundKind:  "类型参数 %[2]s 的约束 %[1]s 必须是类或接口",
	NoticeTypeParamShadows: "类型参数 %s 遮蔽了类 %s",

	// 编译指令、declare、use
	ErrPragmaUnknown:         "未知的编译指令 %s",
	ErrPragmaArgs:            "编译指令 %s 需要 %d 个参数，实际给出 %d 个",
	ErrSuspendNotAllowed:     "此处不允许 suspend 编译指令",
	ErrErrorThrowsTwice:      "error_throws_exception 已在 %s 中设置",
	ErrErrorThrowsTooLate:    "error_throws_exception 必须在任何触发错误的签名之前设置（首个位于 %s）",
	ErrErrorThrowsChecked:    "%s 不是受检异常",
	ErrAutoloadTwice:         "自动加载函数已在 %s 中注册",
	ErrAutoloadSignature:     "自动加载函数 %s 必须恰好接受一个必选的 string 参数",
	ErrAutoloadUndefined:     "自动加载函数 %s 未声明",
	ErrDeclareUnknown:        "未知的指令 %s",
	ErrDeclareValue:          "指令 %s 的值无效",
	ErrStrictTypesFirst:      "strict_types 声明必须是第一条语句",
	ErrUseAliasRedeclared:    "别名 %s 已用于 %s",
	NoticeUseUnused:          "未使用的 use %s",
	ErrNamespaceNotFirst:     "namespace 声明必须位于其他代码之前",
	ErrConstantRedeclared:    "常量 %s 已在 %s 中声明",
	ErrUndefinedConstant:     "未定义的常量 %s",
	ErrConstantNotStatic:     "表达式不是静态表达式",
	NoticeTrailingWhitespace: "文件末尾的结束标签之后存在空白",

	// 源单元
	ErrReadUnit:         "无法读取 %s：%s",
	ErrRecursionLimit:   "加载 %s 时源单元嵌套过深（上限 %d）",
	ErrRequireNotStatic: "无法解析被引入文件的路径",
	ErrRequireNotFound:  "未找到被引入的文件 %s",

	// 未使用报告
	NoticeUnusedClass:    "未使用的私有类 %s",
	NoticeUnusedConstant: "未使用的私有常量 %s",
	NoticeUnusedProperty: "未使用的私有属性 %s",
	NoticeUnusedMethod:   "未使用的私有方法 %s",
	NoticeUnusedUnit:     "%s 引入了 %s 但未使用其中任何内容",

	// 修复建议
	HintDidYouMean: "是否想使用 %s？",

	// 词语
	WordEOF:  "文件结束",
	WordText: "文本块",

	// 汇总
	MsgSummary:     "%s 行，%s 个源单元：%d 个致命错误，%d 个错误，%d 个警告，%d 个提示",
	MsgSummaryNone: "%s 行，%s 个源单元：未发现问题",
}
