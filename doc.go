/*
Package lrkit is a toolbox for LR parser construction.

LRKit builds LR(0), SLR(1) and canonical LR(1) parser tables from context-free
grammars and drives a table-driven parser with them. Package structure is
as follows:

■ lr: Package lr implements grammars, item sets, FIRST/FOLLOW analysis, the
characteristic finite state machine and the construction of ACTION/GOTO tables.

■ lr/lrparse: Package lrparse implements a stack automaton consuming a token stream
against the tables of package lr.

■ lr/scanner: Package scanner defines the token stream interface the parser relies on.

■ lr/grammarfile: Package grammarfile reads grammar descriptions from files.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lrkit
