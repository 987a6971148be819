package codegen

// Runtime helpers emitted once per program, ahead of _start. They are
// leaf routines built directly on the write/read syscalls so the
// generated program links with no libc.
//
// Calling convention: argument in %rdi, result in %rax. The helpers
// preserve every pool register; %r11 is saved explicitly because the
// syscall instruction clobbers it.

// emitRuntime writes print_int, print_char, and read_int.
func (g *Generator) emitRuntime() {
	g.emitPrintInt()
	g.emitPrintChar()
	g.emitReadInt()
}

// emitPrintInt converts the signed value in %rdi to decimal digits in a
// stack buffer, last digit first, then writes them to stdout.
func (g *Generator) emitPrintInt() {
	g.emitRaw("# print_int: writes the signed integer in %rdi to stdout")
	g.emitLabel("print_int")
	g.emit("pushq %%rbp")
	g.emit("movq %%rsp, %%rbp")
	g.emit("pushq %%rbx")
	g.emit("pushq %%r11")
	g.emit("subq $48, %%rsp")
	g.emit("movq %%rdi, %%rax")
	g.emit("leaq -17(%%rbp), %%rsi")
	g.emit("movq $0, %%rbx")
	g.emit("movq $0, %%rcx")
	g.emit("cmpq $0, %%rax")
	g.emit("jge print_int_digits")
	g.emit("negq %%rax")
	g.emit("movq $1, %%rcx")
	g.emitLabel("print_int_digits")
	g.emit("pushq %%rcx")
	g.emit("movq $10, %%rcx")
	g.emitLabel("print_int_loop")
	g.emit("xorq %%rdx, %%rdx")
	g.emit("divq %%rcx")
	g.emit("addq $48, %%rdx")
	g.emit("movb %%dl, (%%rsi)")
	g.emit("decq %%rsi")
	g.emit("incq %%rbx")
	g.emit("testq %%rax, %%rax")
	g.emit("jnz print_int_loop")
	g.emit("popq %%rcx")
	g.emit("testq %%rcx, %%rcx")
	g.emit("jz print_int_write")
	g.emit("movb $45, (%%rsi)")
	g.emit("decq %%rsi")
	g.emit("incq %%rbx")
	g.emitLabel("print_int_write")
	g.emit("incq %%rsi")
	g.emit("movq $1, %%rax")
	g.emit("movq $1, %%rdi")
	g.emit("movq %%rbx, %%rdx")
	g.emit("syscall")
	g.emit("addq $48, %%rsp")
	g.emit("popq %%r11")
	g.emit("popq %%rbx")
	g.emit("popq %%rbp")
	g.emit("ret")
	g.emitRaw("")
}

// emitPrintChar writes the single byte in %dil to stdout.
func (g *Generator) emitPrintChar() {
	g.emitRaw("# print_char: writes the byte in %dil to stdout")
	g.emitLabel("print_char")
	g.emit("pushq %%rbp")
	g.emit("movq %%rsp, %%rbp")
	g.emit("pushq %%r11")
	g.emit("subq $16, %%rsp")
	g.emit("movb %%dil, -9(%%rbp)")
	g.emit("movq $1, %%rax")
	g.emit("movq $1, %%rdi")
	g.emit("leaq -9(%%rbp), %%rsi")
	g.emit("movq $1, %%rdx")
	g.emit("syscall")
	g.emit("addq $16, %%rsp")
	g.emit("popq %%r11")
	g.emit("popq %%rbp")
	g.emit("ret")
	g.emitRaw("")
}

// emitReadInt reads bytes from stdin one at a time, accepting an
// optional leading minus and decimal digits, stopping at the first
// non-digit. The parsed value is returned in %rax.
func (g *Generator) emitReadInt() {
	g.emitRaw("# read_int: reads a signed decimal integer from stdin into %rax")
	g.emitLabel("read_int")
	g.emit("pushq %%rbp")
	g.emit("movq %%rsp, %%rbp")
	g.emit("pushq %%rbx")
	g.emit("pushq %%r11")
	g.emit("subq $16, %%rsp")
	g.emit("movq $0, %%rbx")
	g.emit("movq $0, -32(%%rbp)")
	g.emitLabel("read_int_loop")
	g.emit("movq $0, %%rax")
	g.emit("movq $0, %%rdi")
	g.emit("leaq -24(%%rbp), %%rsi")
	g.emit("movq $1, %%rdx")
	g.emit("syscall")
	g.emit("testq %%rax, %%rax")
	g.emit("jle read_int_done")
	g.emit("movzbq -24(%%rbp), %%rcx")
	g.emit("cmpq $45, %%rcx")
	g.emit("jne read_int_digit")
	g.emit("movq $1, -32(%%rbp)")
	g.emit("jmp read_int_loop")
	g.emitLabel("read_int_digit")
	g.emit("cmpq $48, %%rcx")
	g.emit("jl read_int_done")
	g.emit("cmpq $57, %%rcx")
	g.emit("jg read_int_done")
	g.emit("imulq $10, %%rbx")
	g.emit("subq $48, %%rcx")
	g.emit("addq %%rcx, %%rbx")
	g.emit("jmp read_int_loop")
	g.emitLabel("read_int_done")
	g.emit("cmpq $0, -32(%%rbp)")
	g.emit("je read_int_ret")
	g.emit("negq %%rbx")
	g.emitLabel("read_int_ret")
	g.emit("movq %%rbx, %%rax")
	g.emit("addq $16, %%rsp")
	g.emit("popq %%r11")
	g.emit("popq %%rbx")
	g.emit("popq %%rbp")
	g.emit("ret")
	g.emitRaw("")
}
