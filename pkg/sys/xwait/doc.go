// Package xwait 把子进程的原始终止状态建模为封闭、穷尽的状态空间。
//
// 原始 wait 状态是一个承载多种编码的整数；xwait 将它一次性转换为
// 不可变的 [Outcome]（正常退出 / 被信号终止 / 被信号停止三选一），
// 之后所有判断都在类型层面完成，不再接触位编码。
//
// # 三级渐进宽化
//
// 同一原始状态可以按三种由窄到宽的结果层级解读：
//
//   - [Exit]: 最窄。退出码 0 为成功，非零为 [*ExitError]；
//     出现被信号终止/停止的状态属于调用方契约违背（等待模式与
//     可能到达的通知不匹配），直接 panic
//   - [ExitOrSignal]: 增加 [*SignalError]；停止状态仍然 panic
//   - [From]: 最宽，全域转换。每个原始状态恰好映射到一个变体
//
// 窄转换是受检的全函数而非隐式向上转型：[Widen] 把三级错误还原为
// [Outcome]，与窄化方向构成显式转换对，不使用子类型建模。
//
// # 渲染
//
//	exited normally
//	exited with code 17
//	died after receiving SIGTERM (signal number 15)
//	stopped by SIGSTOP (signal number 19)
//
// [Outcome.OrError] 把任意层级投影为通用的成功/失败结果，错误信息
// 即上述渲染文本，供只关心通过与否的调用方使用。
//
// # 内核布局映射表
//
// 变体的判别依据是 wait(2) 文档约定的位布局，不依赖枚举声明顺序；
// 映射表与转换函数相邻维护，并由测试断言（见 status_test.go）。
package xwait
