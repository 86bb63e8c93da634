// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package notifications allow communication from the hardware directly to the
// emulation instance. This is useful, for example, for the debugger to halt
// execution when a cartridge switches banks or when the CPU services an
// interrupt.
//
// Notifications are sent synchronously. The Notify() function is called in the
// same call that caused the notification and before that call returns.
package notifications
